// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordMatcher defines the interface for password verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordMatcher interface {
	// Matches compares a plaintext password with a stored hash.
	Matches(password, hash string) bool

	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
}
