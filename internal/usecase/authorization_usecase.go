package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// AuthorizationUsecase defines the interface for resolving an authenticated
// identity to a stored account and enforcing subject-match rules.
type AuthorizationUsecase interface {
	// AuthorizeAccount loads the account behind the identity. When
	// expectedExternalID is non-empty it must equal the account's external
	// ID, otherwise the caller is acting on someone else's resource.
	AuthorizeAccount(ctx context.Context, identity, expectedExternalID string) (*entity.Account, error)

	// AuthorizeAdmin loads the account behind the identity and requires it
	// to carry an admin extension. When expectedAdminExternalID is non-empty
	// it must equal the admin's external ID.
	AuthorizeAdmin(ctx context.Context, identity, expectedAdminExternalID string) (*entity.Admin, error)
}
