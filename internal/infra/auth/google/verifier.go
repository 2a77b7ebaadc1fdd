// Package google verifies Google sign-in ID tokens for social login.
package google

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	"backoffice/config"
	"backoffice/internal/domain/service"
)

// socialVerifier validates Google-issued ID tokens against the configured
// OAuth client ID.
type socialVerifier struct {
	clientID string
	logger   *slog.Logger
}

// NewSocialVerifier creates a Google-backed service.SocialVerifier.
func NewSocialVerifier(cfg *config.Config, logger *slog.Logger) service.SocialVerifier {
	return &socialVerifier{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
	}
}

// VerifyIDToken validates the token's signature, issuer, audience and expiry
// via Google's public keys and extracts the asserted identity.
func (v *socialVerifier) VerifyIDToken(ctx context.Context, idTokenString string) (*service.SocialIdentity, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to validate google id token")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google id token has no email claim")
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("google account email is not verified")
	}

	name, _ := payload.Claims["name"].(string)

	return &service.SocialIdentity{
		Email:    email,
		Name:     name,
		Platform: "google",
	}, nil
}
