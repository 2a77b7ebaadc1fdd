package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the elevated-privilege extension of an Account. Each Account owns
// at most one Admin record; its external ID is the one used for admin-scoped
// subject-match checks, not the Account's.
type Admin struct {
	AccountID   uuid.UUID // Links the extension to its owning Account.
	ExternalID  string    // Public-facing identifier used in admin request paths.
	DisplayName string
	CreatedAt   time.Time
}
