package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is an opaque bearer credential issued to an Account. A request
// presenting the token authenticates as the linked account until ExpiresAt.
type APIKey struct {
	ID        uuid.UUID
	Token     string // Opaque bearer string presented in the Authorization header.
	AccountID uuid.UUID
	Account   *Account // The owning account; nil when not loaded.
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the key is no longer usable at the given time.
func (k *APIKey) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && now.After(k.ExpiresAt)
}
