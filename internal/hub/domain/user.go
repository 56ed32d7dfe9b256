package domain

import "time"

// User is an account that can authenticate against the emulator. Password
// users carry an Argon2id hash; federated users (provisioned through token
// exchange) have an empty hash and can only sign in via their provider.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
