package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authorizationServiceFixtures struct {
	service     usecase.AuthorizationUsecase
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAuthorizationService(t *testing.T) authorizationServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewAuthorizationService(AuthorizationServiceParams{
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return authorizationServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
	}
}

func TestAuthorizationService_AuthorizeAccount_Success(t *testing.T) {
	fx := createTestAuthorizationService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	fx.accountRepo.EXPECT().FindByIdentity(ctx, account.Username).Return(account, nil)

	got, err := fx.service.AuthorizeAccount(ctx, account.Username, account.ExternalID)

	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
}

func TestAuthorizationService_AuthorizeAccount_NoSubjectConstraint(t *testing.T) {
	fx := createTestAuthorizationService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	fx.accountRepo.EXPECT().FindByIdentity(ctx, account.Username).Return(account, nil)

	got, err := fx.service.AuthorizeAccount(ctx, account.Username, "")

	require.NoError(t, err)
	assert.Equal(t, account.ExternalID, got.ExternalID)
}

func TestAuthorizationService_AuthorizeAccount_UnknownIdentity(t *testing.T) {
	fx := createTestAuthorizationService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByIdentity(ctx, "ghost").
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.AuthorizeAccount(ctx, "ghost", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid access token")
}

func TestAuthorizationService_AuthorizeAccount_SubjectMismatch(t *testing.T) {
	fx := createTestAuthorizationService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	fx.accountRepo.EXPECT().FindByIdentity(ctx, account.Username).Return(account, nil)

	_, err := fx.service.AuthorizeAccount(ctx, account.Username, "someone-else")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthorizationService_AuthorizeAdmin_Success(t *testing.T) {
	fx := createTestAuthorizationService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Admin = &entity.Admin{
		AccountID:   account.ID,
		ExternalID:  "adm-ext-1",
		DisplayName: "Ops",
	}
	fx.accountRepo.EXPECT().FindByIdentity(ctx, account.Username).Return(account, nil)

	admin, err := fx.service.AuthorizeAdmin(ctx, account.Username, "adm-ext-1")

	require.NoError(t, err)
	assert.Equal(t, account.ID, admin.AccountID)
}

func TestAuthorizationService_AuthorizeAdmin_MissingAdminRecord(t *testing.T) {
	fx := createTestAuthorizationService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	fx.accountRepo.EXPECT().FindByIdentity(ctx, account.Username).Return(account, nil)

	_, err := fx.service.AuthorizeAdmin(ctx, account.Username, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDataInconsistent)
}

func TestAuthorizationService_AuthorizeAdmin_SubjectMismatch(t *testing.T) {
	fx := createTestAuthorizationService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Admin = &entity.Admin{
		AccountID:  account.ID,
		ExternalID: "adm-ext-1",
	}
	fx.accountRepo.EXPECT().FindByIdentity(ctx, account.Username).Return(account, nil)

	// The check compares against the admin's external ID, so the account's
	// own external ID must not pass.
	_, err := fx.service.AuthorizeAdmin(ctx, account.Username, account.ExternalID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
