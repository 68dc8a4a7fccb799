package models

import "time"

// Credential is what a caller presents to prove its identity: a signed JWT in
// token mode or a signed session id in session mode.
type Credential struct {
	// Value is the opaque string handed to the client.
	Value string

	// UserID is the identity the credential asserts.
	UserID string

	// ExpiresAt is when the credential stops being accepted.
	ExpiresAt time.Time
}
