// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxLoginAttempt = 5
	defaultAutoUnlockAfter = 24 * time.Hour
)

// pendingAllowedPathParts lists the request path fragments an account with an
// unverified email may still reach. Everything else is gated until the email
// is verified.
var pendingAllowedPathParts = []string{
	"/auth",
	"/accounts",
	"/members",
	"/hotels",
	"/countries",
	"/voucher-members",
}

// securityService implements the SecurityUsecase interface.
type securityService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	accessRepo      repository.AccessRepository
	apiKeyRepo      repository.APIKeyRepository
	matcher         service.PasswordMatcher
	tokens          service.TokenService
	maxLoginAttempt int
	autoUnlockAfter time.Duration
	logger          *slog.Logger
}

// SecurityServiceParams holds dependencies for SecurityService, injected by Fx.
type SecurityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	AccessRepo   repository.AccessRepository
	APIKeyRepo   repository.APIKeyRepository
	Matcher      service.PasswordMatcher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSecurityService is the constructor for securityService. It receives all dependencies as interfaces.
func NewSecurityService(params SecurityServiceParams) usecase.SecurityUsecase {
	maxLoginAttempt := defaultMaxLoginAttempt
	autoUnlockAfter := defaultAutoUnlockAfter
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.MaxLoginAttempt > 0 {
			maxLoginAttempt = params.Config.Auth.MaxLoginAttempt
		}
		if params.Config.Auth.AutoUnlockAfter > 0 {
			autoUnlockAfter = params.Config.Auth.AutoUnlockAfter
		}
	}

	return &securityService{
		txManager:       params.TxManager,
		accountRepo:     params.AccountRepo,
		accessRepo:      params.AccessRepo,
		apiKeyRepo:      params.APIKeyRepo,
		matcher:         params.Matcher,
		tokens:          params.TokenService,
		maxLoginAttempt: maxLoginAttempt,
		autoUnlockAfter: autoUnlockAfter,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *securityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate performs a password login with brute-force lockout.
//
// The lockout counter is written through the repository instance directly,
// never through the caller's transaction. A failed login must stay recorded
// even when the surrounding request handling rolls back.
func (srv *securityService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticatedUser, error) {
	if input.Identity == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidAuthInfo
	}

	account, err := srv.loadAccountByIdentity(ctx, input.Identity)
	if err != nil {
		return nil, err
	}

	// Locked accounts are rejected before any password comparison so the
	// lockout cannot be probed with candidate passwords.
	if account.Locked {
		srv.log(ctx).Info("Rejected login for locked account", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrAccountLocked.WrapMessage(fmt.Sprintf(
			"account is locked after %d failed login attempts, it will be unlocked automatically at %s",
			srv.maxLoginAttempt, account.UnlockDisplayTime(),
		))
	}

	if !srv.matcher.Matches(input.Password, account.PasswordHash) {
		return nil, srv.registerFailedAttempt(ctx, account)
	}

	switch account.Status {
	case entity.StatusPending:
		return nil, domainerrors.ErrEmailNotVerified
	case entity.StatusSuspended:
		return nil, domainerrors.ErrAccountSuspended
	}

	permissions, err := srv.accessRepo.ListRolePermissions(ctx, account.RoleID)
	if err != nil {
		srv.log(ctx).Error("Failed to list role permissions", slog.Any("roleID", account.RoleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list role permissions")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.AuthenticatedUser{
		Account:     account,
		AccessNames: permissions.AllowedAccessNames(),
	}, nil
}

// loadAccountByIdentity reads the account in a short transaction so the row
// and its preloaded role are consistent with each other.
func (srv *securityService) loadAccountByIdentity(ctx context.Context, identity string) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByIdentity(ctx, identity)
		if err != nil {
			return err
		}
		account = found

		return nil
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load account", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// registerFailedAttempt records a wrong password attempt and, when the
// attempt count reaches the configured maximum, locks the account. Both
// writes use the autocommit repository instance. The store returns the
// post-increment counter, so two racing failures cannot both observe the
// same attempt number.
func (srv *securityService) registerFailedAttempt(ctx context.Context, account *entity.Account) error {
	attempt, err := srv.accountRepo.IncrementLoginAttempt(ctx, account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to increment login attempt", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to increment login attempt")
	}

	if attempt == srv.maxLoginAttempt {
		until := time.Now().Add(srv.autoUnlockAfter)
		if err := srv.accountRepo.LockAccount(ctx, account.ID, until); err != nil {
			srv.log(ctx).Error("Failed to lock account", slog.Any("accountID", account.ID), slog.Any("error", err))

			return errors.Wrap(err, "failed to lock account")
		}

		srv.log(ctx).Warn("Account locked after repeated failed logins",
			slog.Any("accountID", account.ID), slog.Int("attempts", attempt))

		return domainerrors.ErrAccountLocked.WrapMessage(fmt.Sprintf(
			"you have entered a wrong password %d times, your account is locked for %d hours",
			attempt, int(srv.autoUnlockAfter.Hours()),
		))
	}

	srv.log(ctx).Info("Wrong password attempt",
		slog.Any("accountID", account.ID), slog.Int("attempt", attempt))

	return domainerrors.ErrWrongPassword
}

// SocialAuthenticate resolves a verified social identity to a local account.
// An unknown email is not an error: the caller receives a nil account and
// decides whether to start a signup flow.
func (srv *securityService) SocialAuthenticate(ctx context.Context, input *usecase.SocialAuthenticateInput) (*usecase.AuthenticatedSocialUser, error) {
	if input.Email == "" {
		return nil, domainerrors.ErrInvalidAuthInfo
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Social login for unknown email", slog.String("platform", input.Platform))

		return &usecase.AuthenticatedSocialUser{AccessNames: []string{}}, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load account by email", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account by email")
	}

	if account.Status == entity.StatusSuspended {
		return nil, domainerrors.ErrAccountSuspended
	}

	permissions, err := srv.accessRepo.ListRolePermissions(ctx, account.RoleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role permissions")
	}

	return &usecase.AuthenticatedSocialUser{
		Account:     account,
		AccessNames: permissions.AllowedAccessNames(),
	}, nil
}

// AuthenticateToken authenticates a bearer token and returns its verified principal.
func (srv *securityService) AuthenticateToken(ctx context.Context, input *usecase.TokenAuthenticateInput) (*entity.Principal, error) {
	if input.Token == "" || input.RequestPath == "" {
		return nil, domainerrors.ErrInvalidAuthInfo
	}

	key, err := srv.apiKeyRepo.FindByToken(ctx, input.Token)
	if errors.Is(err, repository.ErrAPIKeyNotFound) {
		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load api key", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load api key")
	}

	if key.Account != nil && key.Account.Status == entity.StatusPending &&
		!pathAllowedWhilePending(input.RequestPath) {
		return nil, domainerrors.ErrPendingVerification
	}

	principal, err := srv.tokens.VerifyToken(input.Token)
	if err != nil {
		return nil, err
	}

	return principal, nil
}

// pathAllowedWhilePending reports whether a pending account may reach the path.
func pathAllowedWhilePending(path string) bool {
	for _, part := range pendingAllowedPathParts {
		if strings.Contains(path, part) {
			return true
		}
	}

	return false
}

// ChangePassword replaces the account's password after verifying the current
// one. A wrong current password is treated exactly like a failed login so the
// endpoint cannot be used to probe passwords without tripping the lockout.
func (srv *securityService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if input.Identity == "" || input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerrors.ErrInvalidAuthInfo
	}

	account, err := srv.loadAccountByIdentity(ctx, input.Identity)
	if err != nil {
		return err
	}

	if account.Locked {
		return domainerrors.ErrAccountLocked.WrapMessage(fmt.Sprintf(
			"account is locked after %d failed login attempts, it will be unlocked automatically at %s",
			srv.maxLoginAttempt, account.UnlockDisplayTime(),
		))
	}

	if !srv.matcher.Matches(input.CurrentPassword, account.PasswordHash) {
		return srv.registerFailedAttempt(ctx, account)
	}

	hash, err := srv.matcher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash new password")
	}
	account.PasswordHash = hash

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AccountRepo().Update(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update password", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", account.ID))

	return nil
}

// IsRoleAuthorized reports whether the role holds an ALLOWED grant for the
// named access.
func (srv *securityService) IsRoleAuthorized(ctx context.Context, roleName, accessName string) (bool, error) {
	count, err := srv.accessRepo.CountPermissions(ctx, accessName, roleName, entity.PermissionAllowed)
	if err != nil {
		srv.log(ctx).Error("Failed to count permissions",
			slog.String("role", roleName), slog.String("access", accessName), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to count permissions")
	}

	if count == 0 {
		return false, domainerrors.ErrInvalidCredentials
	}

	return true, nil
}

// UnlockDueAccounts clears lockouts whose unlock time has passed. Intended to
// be invoked periodically by an operational endpoint or scheduler.
func (srv *securityService) UnlockDueAccounts(ctx context.Context) (int64, error) {
	unlocked, err := srv.accountRepo.UnlockDue(ctx, time.Now())
	if err != nil {
		srv.log(ctx).Error("Failed to unlock due accounts", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to unlock due accounts")
	}

	if unlocked > 0 {
		srv.log(ctx).Info("Unlocked due accounts", slog.Int64("count", unlocked))
	}

	return unlocked, nil
}
