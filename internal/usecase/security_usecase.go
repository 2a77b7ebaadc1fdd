// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// --- Input DTOs ---

// AuthenticateInput defines the data required for a password login.
type AuthenticateInput struct {
	Identity string // Username or email.
	Password string
}

// SocialAuthenticateInput defines the data required for a social login, after
// the provider token has already been verified.
type SocialAuthenticateInput struct {
	Email    string
	Platform string // Provider name, e.g. "google".
}

// TokenAuthenticateInput defines the data required to authenticate a bearer
// token presented on a request.
type TokenAuthenticateInput struct {
	Token       string
	RequestPath string
}

// ChangePasswordInput defines the data required to replace an account's
// password. The current password must be presented again.
type ChangePasswordInput struct {
	Identity        string
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthenticatedUser returns the authenticated account together with the names
// of the accesses its role allows.
type AuthenticatedUser struct {
	Account     *entity.Account
	AccessNames []string
}

// AuthenticatedSocialUser returns the result of a social login. Account is
// nil when no local account matches the social identity; the caller decides
// whether to start a signup flow.
type AuthenticatedSocialUser struct {
	Account     *entity.Account
	AccessNames []string
}

// SecurityUsecase defines the interface for authentication and permission
// checks. This is the contract that the delivery layer will depend on.
type SecurityUsecase interface {
	// Authenticate performs a password login with brute-force lockout.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticatedUser, error)

	// SocialAuthenticate resolves a verified social identity to a local
	// account. An unknown email yields a nil-account result, not an error.
	SocialAuthenticate(ctx context.Context, input *SocialAuthenticateInput) (*AuthenticatedSocialUser, error)

	// AuthenticateToken authenticates a bearer token and returns its
	// verified principal.
	AuthenticateToken(ctx context.Context, input *TokenAuthenticateInput) (*entity.Principal, error)

	// ChangePassword replaces the account's password after verifying the
	// current one. Wrong current passwords count toward the lockout.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// IsRoleAuthorized reports whether the role holds an ALLOWED grant for
	// the named access.
	IsRoleAuthorized(ctx context.Context, roleName, accessName string) (bool, error)

	// UnlockDueAccounts clears lockouts whose unlock time has passed and
	// returns how many accounts were unlocked.
	UnlockDueAccounts(ctx context.Context) (int64, error)
}
