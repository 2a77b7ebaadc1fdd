package impl

import (
	"context"
	"testing"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSecurityService_ChangePassword_Success(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()

	// First Execute loads the account, the second persists the new hash.
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByIdentity(ctx, account.Username).Return(account, nil)

			return fn(mockFactory)
		}).Once()
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().Update(ctx, account).Return(nil)

			return fn(mockFactory)
		}).Once()

	fx.matcher.EXPECT().Matches("Password123!", "hashed_password").Return(true)
	fx.matcher.EXPECT().Hash("NewPassword456!").Return("new_hashed_password", nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Identity:        account.Username,
		CurrentPassword: "Password123!",
		NewPassword:     "NewPassword456!",
	})

	require.NoError(t, err)
	assert.Equal(t, "new_hashed_password", account.PasswordHash)
}

func TestSecurityService_ChangePassword_BlankInput(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Identity:        "editor01",
		CurrentPassword: "",
		NewPassword:     "NewPassword456!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthInfo)
}

func TestSecurityService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	expectAccountLoad(t, fx, account.Username, account, nil)

	fx.matcher.EXPECT().Matches("bad-password", account.PasswordHash).Return(false)
	fx.accountRepo.EXPECT().IncrementLoginAttempt(ctx, account.ID).Return(1, nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Identity:        account.Username,
		CurrentPassword: "bad-password",
		NewPassword:     "NewPassword456!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWrongPassword)
}

func TestSecurityService_ChangePassword_LockedAccount(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Locked = true
	expectAccountLoad(t, fx, account.Username, account, nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		Identity:        account.Username,
		CurrentPassword: "Password123!",
		NewPassword:     "NewPassword456!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountLocked)
}
