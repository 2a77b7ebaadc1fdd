// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"backoffice/config"
	"backoffice/internal/domain/service"
)

// bcryptMatcher is a concrete implementation of the PasswordMatcher interface using bcrypt.
type bcryptMatcher struct {
	cost int
}

// NewBcryptMatcher is the constructor for bcryptMatcher.
// It returns the implementation as a service.PasswordMatcher interface.
func NewBcryptMatcher(cfg *config.Config) service.PasswordMatcher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptMatcher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (m *bcryptMatcher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	return string(bytes), err
}

// Matches compares a plaintext password with a bcrypt hash.
func (m *bcryptMatcher) Matches(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
