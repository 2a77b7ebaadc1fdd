// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
)

// jwtTokenService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtTokenService struct {
	secret string        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
}

const defaultTokenTTL = 24 * time.Hour

// NewJWTTokenService is the constructor for jwtTokenService.
// It takes configuration values to create a new token service instance.
func NewJWTTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtTokenService{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// IssueToken creates a signed token carrying the principal's identity.
func (s *jwtTokenService) IssueToken(principal *entity.Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": principal.AccountID.String(), // Subject (who the token is for)
		"ext": principal.ExternalID,
		"idn": principal.Identity,
		"iat": now.Unix(),            // Issued At
		"exp": now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken checks the signature and expiry of a token string and returns
// the principal it was issued for. Any parse or signature failure maps to the
// unauthorized sentinel so callers never leak crypto details.
func (s *jwtTokenService) VerifyToken(tokenString string) (*entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	externalID, _ := claims["ext"].(string)
	identity, _ := claims["idn"].(string)

	return &entity.Principal{
		AccountID:  accountID,
		ExternalID: externalID,
		Identity:   identity,
	}, nil
}
