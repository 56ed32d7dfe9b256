package domain

import "time"

// Identity links a federated provider credential to a local user. The raw
// provider token is never stored; TokenFingerprint is its SHA-256
// fingerprint, so presenting the same token again resolves to the same user.
type Identity struct {
	ID               string
	Provider         string
	TokenFingerprint string
	UserID           string
	CreatedAt        time.Time
}
