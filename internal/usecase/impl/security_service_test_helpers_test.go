package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

// securityServiceFixtures holds all test dependencies for security service tests.
type securityServiceFixtures struct {
	service      usecase.SecurityUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	accessRepo   *mockRepo.MockAccessRepository
	apiKeyRepo   *mockRepo.MockAPIKeyRepository
	matcher      *mockSvc.MockPasswordMatcher
	tokenService *mockSvc.MockTokenService
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		MaxLoginAttempt: 3,
		AutoUnlockAfter: 24 * time.Hour,
	}

	return cfg
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestSecurityService(t *testing.T) securityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accessRepo := mockRepo.NewMockAccessRepository(t)
	apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
	matcher := mockSvc.NewMockPasswordMatcher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewSecurityService(SecurityServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		AccessRepo:   accessRepo,
		APIKeyRepo:   apiKeyRepo,
		Matcher:      matcher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return securityServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		accessRepo:   accessRepo,
		apiKeyRepo:   apiKeyRepo,
		matcher:      matcher,
		tokenService: tokenService,
	}
}

// buildActiveAccount returns an account ready to pass every login gate.
func buildActiveAccount() *entity.Account {
	roleID := uuid.New()

	return &entity.Account{
		ID:           uuid.New(),
		ExternalID:   "acc-ext-1",
		Username:     "editor01",
		Email:        "editor01@example.com",
		PasswordHash: "hashed_password",
		Status:       entity.StatusActive,
		RoleID:       roleID,
		Role:         &entity.Role{ID: roleID, Name: "editor"},
	}
}
