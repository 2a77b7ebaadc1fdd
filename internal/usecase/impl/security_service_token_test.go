package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAPIKey(account *entity.Account) *entity.APIKey {
	return &entity.APIKey{
		Token:     "opaque-token",
		AccountID: account.ID,
		Account:   account,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSecurityService_AuthenticateToken_Success(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	key := buildAPIKey(account)
	principal := &entity.Principal{
		AccountID:  account.ID,
		ExternalID: account.ExternalID,
		Identity:   account.Username,
	}

	fx.apiKeyRepo.EXPECT().FindByToken(ctx, key.Token).Return(key, nil)
	fx.tokenService.EXPECT().VerifyToken(key.Token).Return(principal, nil)

	got, err := fx.service.AuthenticateToken(ctx, &usecase.TokenAuthenticateInput{
		Token:       key.Token,
		RequestPath: "/reports/daily",
	})

	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestSecurityService_AuthenticateToken_BlankInput(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()

	_, err := fx.service.AuthenticateToken(ctx, &usecase.TokenAuthenticateInput{Token: "", RequestPath: "/reports"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthInfo)

	_, err = fx.service.AuthenticateToken(ctx, &usecase.TokenAuthenticateInput{Token: "opaque-token", RequestPath: ""})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthInfo)
}

func TestSecurityService_AuthenticateToken_UnknownToken(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	fx.apiKeyRepo.EXPECT().
		FindByToken(ctx, "revoked-token").
		Return(nil, repository.ErrAPIKeyNotFound)

	_, err := fx.service.AuthenticateToken(ctx, &usecase.TokenAuthenticateInput{
		Token:       "revoked-token",
		RequestPath: "/reports",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid or expired access token")
}

func TestSecurityService_AuthenticateToken_PendingAccountGatedPath(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Status = entity.StatusPending
	key := buildAPIKey(account)

	fx.apiKeyRepo.EXPECT().FindByToken(ctx, key.Token).Return(key, nil)

	// No VerifyToken expectation: the gate rejects before signature checks.
	_, err := fx.service.AuthenticateToken(ctx, &usecase.TokenAuthenticateInput{
		Token:       key.Token,
		RequestPath: "/reports/daily",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPendingVerification)
	assert.Contains(t, err.Error(), "not been verified")
}

func TestSecurityService_AuthenticateToken_PendingAccountAllowedPath(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Status = entity.StatusPending
	key := buildAPIKey(account)
	principal := &entity.Principal{AccountID: account.ID, Identity: account.Username}

	fx.apiKeyRepo.EXPECT().FindByToken(ctx, key.Token).Return(key, nil)
	fx.tokenService.EXPECT().VerifyToken(key.Token).Return(principal, nil)

	got, err := fx.service.AuthenticateToken(ctx, &usecase.TokenAuthenticateInput{
		Token:       key.Token,
		RequestPath: "/accounts/acc-ext-1",
	})

	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestSecurityService_AuthenticateToken_VerifierFailurePropagates(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	key := buildAPIKey(account)

	fx.apiKeyRepo.EXPECT().FindByToken(ctx, key.Token).Return(key, nil)
	fx.tokenService.EXPECT().VerifyToken(key.Token).Return(nil, domainerrors.ErrUnauthorized)

	_, err := fx.service.AuthenticateToken(ctx, &usecase.TokenAuthenticateInput{
		Token:       key.Token,
		RequestPath: "/reports",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
