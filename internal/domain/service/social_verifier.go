package service

import "context"

// SocialIdentity is the identity asserted by an external identity provider
// after its token has been verified.
type SocialIdentity struct {
	Email    string
	Name     string
	Platform string // Provider name, e.g. "google".
}

// SocialVerifier defines the interface for verifying identity tokens issued
// by external providers (Google sign-in and similar).
type SocialVerifier interface {
	// VerifyIDToken validates the provider-issued ID token and extracts the
	// asserted identity.
	VerifyIDToken(ctx context.Context, idToken string) (*SocialIdentity, error)
}
