package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIKey_Expired(t *testing.T) {
	now := time.Now()

	live := &APIKey{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, live.Expired(now))

	stale := &APIKey{ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, stale.Expired(now))

	// A key is usable up to and including its expiry instant.
	boundary := &APIKey{ExpiresAt: now}
	assert.False(t, boundary.Expired(now))

	open := &APIKey{}
	assert.False(t, open.Expired(now))
}
