package auth

import (
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	return cfg
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTTokenService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	principal := &entity.Principal{
		AccountID:  uuid.New(),
		ExternalID: "acc-ext-1",
		Identity:   "editor01",
	}

	token, err := svc.IssueToken(principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, principal.AccountID, got.AccountID)
	assert.Equal(t, principal.ExternalID, got.ExternalID)
	assert.Equal(t, principal.Identity, got.Identity)
}

func TestJWTTokenService_MissingSecret(t *testing.T) {
	_, err := NewJWTTokenService(&config.Config{})
	require.Error(t, err)
}

func TestJWTTokenService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTTokenService(newTestTokenConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTTokenService(newTestTokenConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.IssueToken(&entity.Principal{AccountID: uuid.New(), Identity: "editor01"})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTTokenService_GarbageToken(t *testing.T) {
	svc, err := NewJWTTokenService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken("definitely.not.a.jwt")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	// Build the service directly so a negative ttl produces an already
	// expired token; the constructor would replace it with the default.
	svc := &jwtTokenService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.IssueToken(&entity.Principal{AccountID: uuid.New(), Identity: "editor01"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
