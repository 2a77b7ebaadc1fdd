package service

import (
	"backoffice/internal/domain/entity"
)

// TokenService defines the interface for issuing and verifying signed access
// tokens. This abstracts the details of token format from the use cases.
type TokenService interface {
	// IssueToken creates a signed token carrying the principal's identity.
	IssueToken(principal *entity.Principal) (string, error)

	// VerifyToken checks the signature and expiry of a token string and
	// returns the principal it was issued for.
	VerifyToken(tokenString string) (*entity.Principal, error)
}
