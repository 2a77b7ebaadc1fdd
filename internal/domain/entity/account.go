// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// unlockTimeLayout is the display format for the auto-unlock timestamp shown
// to a locked-out caller.
const unlockTimeLayout = "02 Jan 2006 15:04"

// Account is the core credential record of the system. It carries the login
// identity fields, the lockout state mutated on failed password attempts, and
// the references needed to resolve the account's permissions.
type Account struct {
	ID             uuid.UUID  // Internal unique identifier.
	ExternalID     string     // Public-facing identifier embedded in request paths.
	Username       string     // Login identity; unique.
	Email          string     // Login identity; unique.
	PasswordHash   string     // Opaque password hash, compared via PasswordMatcher only.
	Status         AccountStatus
	Locked         bool       // True while the account is locked out after repeated failures.
	LoginAttempt   int        // Consecutive failed password attempts.
	AutoUnlockedAt *time.Time // When the lock expires; set whenever Locked is true.
	TimezoneOffset int        // Caller timezone offset in minutes, used for display only.
	RoleID         uuid.UUID
	Role           *Role  // The owning role; nil when not loaded.
	Admin          *Admin // Elevated-privilege extension; nil for regular accounts.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UnlockDisplayTime renders the auto-unlock timestamp shifted into the
// account's timezone. Returns an empty string when no unlock time is set.
func (a *Account) UnlockDisplayTime() string {
	if a.AutoUnlockedAt == nil {
		return ""
	}

	return a.AutoUnlockedAt.
		Add(time.Duration(a.TimezoneOffset) * time.Minute).
		Format(unlockTimeLayout)
}
