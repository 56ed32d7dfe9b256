package store

import (
	"context"
	"errors"

	"userhub-go/internal/hub/domain"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories are exposed as methods so transactional and
// non-transactional access share one shape.
type Store interface {
	Users() Users
	Identities() Identities
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn errors
	// and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during session creation.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is a ULID provided by the caller).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error
}

type Identities interface {
	// GetIdentity resolves a (provider, fingerprint) pair.
	GetIdentity(ctx context.Context, provider, fingerprint string) (domain.Identity, error)

	// CreateIdentity inserts a new federated identity.
	CreateIdentity(ctx context.Context, ident domain.Identity) error
}

type Invitations interface {
	// CreateInvitation inserts a new invitation. A pending invitation for
	// the same email yields ErrDuplicate (backed by a partial unique index).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetPendingInvitationByEmail returns the pending invitation for email.
	GetPendingInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error)

	// ListInvitations returns all invitations, newest first.
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)

	// UpdateInvitationStatus transitions an invitation's status.
	UpdateInvitationStatus(ctx context.Context, id, status string) error
}
