package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for API key persistence.
var (
	// ErrAPIKeyNotFound is returned when no live key matches the token.
	ErrAPIKeyNotFound = errors.New("api key not found")
)

// APIKeyRepository defines the interface for API key database operations.
type APIKeyRepository interface {
	// FindByToken retrieves a non-expired key by its opaque token, preloading
	// the linked account.
	FindByToken(ctx context.Context, token string) (*entity.APIKey, error)
}
