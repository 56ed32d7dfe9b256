package sqlite

import (
	"context"
	"time"

	"userhub-go/internal/hub/domain"
)

type identitiesRepo struct {
	db dbtx
}

func (r *identitiesRepo) GetIdentity(ctx context.Context, provider, fingerprint string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, provider, token_fingerprint, user_id, created_at
		FROM identities
		WHERE provider = ? AND token_fingerprint = ?`, provider, fingerprint)

	var ident domain.Identity
	err := row.Scan(&ident.ID, &ident.Provider, &ident.TokenFingerprint, &ident.UserID, &ident.CreatedAt)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return ident, nil
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, ident domain.Identity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identities (id, provider, token_fingerprint, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		ident.ID, ident.Provider, ident.TokenFingerprint, ident.UserID, time.Now().UTC())
	return mapDuplicate(err)
}
