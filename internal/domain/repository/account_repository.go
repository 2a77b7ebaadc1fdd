// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when a unique identity field is already taken.
	ErrDuplicateAccount = errors.New("account already exists")
)

// AccountRepository defines the interface for account-related database operations.
type AccountRepository interface {
	// FindByIdentity retrieves an account whose username or email equals identity.
	FindByIdentity(ctx context.Context, identity string) (*entity.Account, error)

	// FindByEmail retrieves an account by email only.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Update persists the mutable fields of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// IncrementLoginAttempt atomically adds one to the account's failed login
	// counter and returns the post-increment value. The read and write happen
	// in a single statement so concurrent callers each observe a distinct
	// counter value.
	IncrementLoginAttempt(ctx context.Context, id uuid.UUID) (int, error)

	// LockAccount marks the account locked until the given time.
	LockAccount(ctx context.Context, id uuid.UUID, until time.Time) error

	// UnlockDue clears the lockout state of every account whose unlock time
	// has passed, returning how many rows were unlocked.
	UnlockDue(ctx context.Context, now time.Time) (int64, error)
}
