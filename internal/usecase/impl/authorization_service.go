package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authorizationService implements the AuthorizationUsecase interface.
type authorizationService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AuthorizationServiceParams holds dependencies for AuthorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	return &authorizationService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthorizeAccount resolves the identity to an account and, when an expected
// external ID is supplied, requires the account to be that exact subject.
func (srv *authorizationService) AuthorizeAccount(ctx context.Context, identity, expectedExternalID string) (*entity.Account, error) {
	account, err := srv.resolveAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	if expectedExternalID != "" && expectedExternalID != account.ExternalID {
		srv.log(ctx).Warn("Subject mismatch on account authorization",
			slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return account, nil
}

// AuthorizeAdmin resolves the identity to an account carrying an admin
// extension. The subject match compares against the admin's external ID, not
// the account's.
func (srv *authorizationService) AuthorizeAdmin(ctx context.Context, identity, expectedAdminExternalID string) (*entity.Admin, error) {
	account, err := srv.resolveAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	if account.Admin == nil {
		// The token authenticated but the admin row is gone. That is a
		// server-side inconsistency, not a caller fault.
		srv.log(ctx).Error("Account passed admin authorization without an admin record",
			slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrDataInconsistent
	}

	if expectedAdminExternalID != "" && expectedAdminExternalID != account.Admin.ExternalID {
		srv.log(ctx).Warn("Subject mismatch on admin authorization",
			slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return account.Admin, nil
}

// resolveAccount is a single read, so it uses the repository instance
// directly instead of opening a transaction.
func (srv *authorizationService) resolveAccount(ctx context.Context, identity string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByIdentity(ctx, identity)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid access token")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to resolve account", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve account")
	}

	return account, nil
}
