package domain

import "time"

// RevokedToken models an entry in the revocation registry. Tokens are keyed
// by their SHA-256 fingerprint, never stored raw. ExpiresAt mirrors the
// token's own exp claim so housekeeping can drop entries once the token
// would have died of old age anyway.
type RevokedToken struct {
	TokenHash string
	ExpiresAt time.Time
	RevokedAt time.Time
}
