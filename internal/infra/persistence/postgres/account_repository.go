// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByIdentity retrieves an account whose username or email equals identity,
// preloading the role and the admin extension.
func (repo *accountRepository) FindByIdentity(ctx context.Context, identity string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		Preload("Admin").
		Where("username = ? OR email = ?", identity, identity).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find account by identity")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves an account by email only.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		Preload("Admin").
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Update persists the mutable fields of an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountConflict.WrapMessage("identity already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// IncrementLoginAttempt atomically adds one to the failed login counter and
// returns the post-increment value. The increment and the read happen in one
// statement so concurrent failures each observe a distinct counter value.
func (repo *accountRepository) IncrementLoginAttempt(ctx context.Context, id uuid.UUID) (int, error) {
	var attempt int
	result := repo.db.WithContext(ctx).Raw(
		`UPDATE accounts
		 SET login_attempt = login_attempt + 1, updated_at = NOW()
		 WHERE id = ?
		 RETURNING login_attempt`,
		id,
	).Scan(&attempt)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment login attempt")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrAccountNotFound
	}

	return attempt, nil
}

// LockAccount marks the account locked until the given time.
func (repo *accountRepository) LockAccount(ctx context.Context, id uuid.UUID, until time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"locked":           true,
			"auto_unlocked_at": until,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to lock account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UnlockDue clears the lockout state of every account whose unlock time has
// passed, returning how many rows were unlocked.
func (repo *accountRepository) UnlockDue(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("locked = ? AND auto_unlocked_at <= ?", true, now).
		Updates(map[string]any{
			"locked":           false,
			"auto_unlocked_at": nil,
			"login_attempt":    0,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to unlock due accounts")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:             data.ID,
		ExternalID:     data.ExternalID,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Status:         entity.AccountStatus(data.Status),
		Locked:         data.Locked,
		LoginAttempt:   data.LoginAttempt,
		AutoUnlockedAt: data.AutoUnlockedAt,
		TimezoneOffset: data.TimezoneOffset,
		RoleID:         data.RoleID,
		Role:           toRoleDomain(data.Role),
		Admin:          toAdminDomain(data.Admin),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:             data.ID,
		ExternalID:     data.ExternalID,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Status:         data.Status.String(),
		Locked:         data.Locked,
		LoginAttempt:   data.LoginAttempt,
		AutoUnlockedAt: data.AutoUnlockedAt,
		TimezoneOffset: data.TimezoneOffset,
		RoleID:         data.RoleID,
		CreatedAt:      data.CreatedAt,
	}
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		AccountID:   data.AccountID,
		ExternalID:  data.ExternalID,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
	}
}
