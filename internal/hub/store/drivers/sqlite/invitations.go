package sqlite

import (
	"context"
	"time"

	"userhub-go/internal/hub/domain"
)

type invitationsRepo struct {
	db dbtx
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	status := inv.Status
	if status == "" {
		status = domain.InvitationStatusPending
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (id, email, role, status, invited_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.Role, status, inv.InvitedBy, now, now)
	return mapDuplicate(err)
}

func (r *invitationsRepo) GetPendingInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, role, status, invited_by, created_at, updated_at
		FROM invitations
		WHERE email = ? AND status = ?`, email, domain.InvitationStatusPending)

	var inv domain.Invitation
	err := row.Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Status, &inv.InvitedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, role, status, invited_by, created_at, updated_at
		FROM invitations
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Status, &inv.InvitedBy, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) UpdateInvitationStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, updated_at = ?
		WHERE id = ?`,
		status, time.Now().UTC(), id)
	return err
}
