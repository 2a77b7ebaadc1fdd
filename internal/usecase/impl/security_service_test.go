package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectAccountLoad wires the transaction manager to hand the use case a
// factory whose account repository answers FindByIdentity.
func expectAccountLoad(t *testing.T, fx securityServiceFixtures, identity string, account *entity.Account, findErr error) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByIdentity(ctx, identity).Return(account, findErr)

			return fn(mockFactory)
		})
}

func TestSecurityService_Authenticate_Success(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	expectAccountLoad(t, fx, account.Username, account, nil)

	fx.matcher.EXPECT().Matches("Password123!", account.PasswordHash).Return(true)
	fx.accessRepo.EXPECT().ListRolePermissions(ctx, account.RoleID).Return(entity.AccessRolePermissions{
		{RoleID: account.RoleID, AccessName: "articles", Permission: entity.PermissionAllowed},
		{RoleID: account.RoleID, AccessName: "settings", Permission: entity.PermissionDenied},
		{RoleID: account.RoleID, AccessName: "media", Permission: entity.PermissionAllowed},
	}, nil)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Identity: account.Username,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.Account.ID)
	assert.Equal(t, []string{"articles", "media"}, output.AccessNames)
}

func TestSecurityService_Authenticate_BlankInput(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Identity: "", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthInfo)

	_, err = fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Identity: "editor01", Password: ""})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthInfo)
}

func TestSecurityService_Authenticate_UnknownIdentity(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	expectAccountLoad(t, fx, "ghost", nil, repository.ErrAccountNotFound)

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Identity: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.Contains(t, err.Error(), "could not find your account")
}

func TestSecurityService_Authenticate_WrongPasswordBelowThreshold(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	expectAccountLoad(t, fx, account.Username, account, nil)

	fx.matcher.EXPECT().Matches("bad-password", account.PasswordHash).Return(false)
	fx.accountRepo.EXPECT().IncrementLoginAttempt(ctx, account.ID).Return(1, nil)

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Identity: account.Username,
		Password: "bad-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWrongPassword)
	// The lock is only written when the counter reaches the maximum, so no
	// LockAccount expectation is registered here.
}

func TestSecurityService_Authenticate_LockTriggeredAtMaxAttempt(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	expectAccountLoad(t, fx, account.Username, account, nil)

	fx.matcher.EXPECT().Matches("bad-password", account.PasswordHash).Return(false)
	fx.accountRepo.EXPECT().IncrementLoginAttempt(ctx, account.ID).Return(3, nil)
	fx.accountRepo.EXPECT().LockAccount(ctx, account.ID, mock.AnythingOfType("time.Time")).Return(nil)

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Identity: account.Username,
		Password: "bad-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountLocked)
	assert.Contains(t, err.Error(), "3 times")
	assert.Contains(t, err.Error(), "24 hours")
}

func TestSecurityService_Authenticate_LockedAccountShortCircuits(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	unlockAt := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	account.Locked = true
	account.LoginAttempt = 3
	account.AutoUnlockedAt = &unlockAt

	expectAccountLoad(t, fx, account.Username, account, nil)

	// No matcher expectation: the password must never be compared for a
	// locked account.
	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Identity: account.Username,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountLocked)
	assert.Contains(t, err.Error(), "unlocked automatically at 14 Mar 2026 09:30")
}

func TestSecurityService_Authenticate_PendingAccount(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Status = entity.StatusPending
	expectAccountLoad(t, fx, account.Username, account, nil)

	fx.matcher.EXPECT().Matches("Password123!", account.PasswordHash).Return(true)

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Identity: account.Username,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestSecurityService_Authenticate_SuspendedAccount(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Status = entity.StatusSuspended
	expectAccountLoad(t, fx, account.Username, account, nil)

	fx.matcher.EXPECT().Matches("Password123!", account.PasswordHash).Return(true)

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Identity: account.Username,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountSuspended)
}

func TestSecurityService_SocialAuthenticate_UnknownEmailIsNotAnError(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "newcomer@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.SocialAuthenticate(ctx, &usecase.SocialAuthenticateInput{
		Email:    "newcomer@example.com",
		Platform: "google",
	})

	require.NoError(t, err)
	assert.Nil(t, output.Account)
	assert.Empty(t, output.AccessNames)
}

func TestSecurityService_SocialAuthenticate_SuspendedAccount(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Status = entity.StatusSuspended

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	_, err := fx.service.SocialAuthenticate(ctx, &usecase.SocialAuthenticateInput{
		Email:    account.Email,
		Platform: "google",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountSuspended)
}

func TestSecurityService_SocialAuthenticate_PendingAccountIsAllowed(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	account := buildActiveAccount()
	account.Status = entity.StatusPending

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.accessRepo.EXPECT().ListRolePermissions(ctx, account.RoleID).Return(entity.AccessRolePermissions{
		{RoleID: account.RoleID, AccessName: "articles", Permission: entity.PermissionAllowed},
	}, nil)

	output, err := fx.service.SocialAuthenticate(ctx, &usecase.SocialAuthenticateInput{
		Email:    account.Email,
		Platform: "google",
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.Account.ID)
	assert.Equal(t, []string{"articles"}, output.AccessNames)
}

func TestSecurityService_IsRoleAuthorized(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	fx.accessRepo.EXPECT().
		CountPermissions(ctx, "articles", "editor", entity.PermissionAllowed).
		Return(int64(1), nil)

	authorized, err := fx.service.IsRoleAuthorized(ctx, "editor", "articles")

	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestSecurityService_IsRoleAuthorized_NoGrant(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	fx.accessRepo.EXPECT().
		CountPermissions(ctx, "settings", "editor", entity.PermissionAllowed).
		Return(int64(0), nil)

	authorized, err := fx.service.IsRoleAuthorized(ctx, "editor", "settings")

	require.Error(t, err)
	assert.False(t, authorized)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSecurityService_UnlockDueAccounts(t *testing.T) {
	fx := createTestSecurityService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		UnlockDue(ctx, mock.AnythingOfType("time.Time")).
		Return(int64(4), nil)

	unlocked, err := fx.service.UnlockDueAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), unlocked)
}
