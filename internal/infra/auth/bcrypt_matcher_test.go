package auth

import (
	"testing"

	"backoffice/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptMatcher_HashAndMatch(t *testing.T) {
	matcher := NewBcryptMatcher(&config.Config{})

	hash, err := matcher.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, matcher.Matches("Password123!", hash))
	assert.False(t, matcher.Matches("password123!", hash))
}

func TestBcryptMatcher_HashesDiffer(t *testing.T) {
	matcher := NewBcryptMatcher(&config.Config{})

	first, err := matcher.Hash("same-password")
	require.NoError(t, err)
	second, err := matcher.Hash("same-password")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input never match.
	assert.NotEqual(t, first, second)
	assert.True(t, matcher.Matches("same-password", first))
	assert.True(t, matcher.Matches("same-password", second))
}

func TestBcryptMatcher_MalformedHash(t *testing.T) {
	matcher := NewBcryptMatcher(&config.Config{})

	assert.False(t, matcher.Matches("anything", "not-a-bcrypt-hash"))
	assert.False(t, matcher.Matches("anything", ""))
}
