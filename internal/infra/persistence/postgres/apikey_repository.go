package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// apiKeyRepository implements the domain.APIKeyRepository interface using GORM.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository is the constructor for apiKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &apiKeyRepository{db: db}
}

// FindByToken retrieves a non-expired key by its opaque token, preloading the
// linked account with its role and admin extension.
func (repo *apiKeyRepository) FindByToken(ctx context.Context, token string) (*entity.APIKey, error) {
	var keyM model.APIKeyModel
	err := repo.db.WithContext(ctx).
		Preload("Account").
		Preload("Account.Role").
		Preload("Account.Admin").
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&keyM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find api key by token")
	}

	return &entity.APIKey{
		ID:        keyM.ID,
		Token:     keyM.Token,
		AccountID: keyM.AccountID,
		Account:   toAccountDomain(keyM.Account),
		CreatedAt: keyM.CreatedAt,
		ExpiresAt: keyM.ExpiresAt,
	}, nil
}
