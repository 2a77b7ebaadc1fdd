package entity

import "github.com/google/uuid"

// Principal is the verified subject of a signed access token. It is what the
// delivery layer attaches to a request after token authentication succeeds.
type Principal struct {
	AccountID  uuid.UUID
	ExternalID string
	Identity   string // The username or email the token was issued for.
}
