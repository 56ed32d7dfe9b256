package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"userhub-go/internal/hub/domain"
	"userhub-go/internal/hub/store"
	"userhub-go/pkg/idx"
	"userhub-go/pkg/slogx"
)

var (
	ErrInvalidEmail        = errors.New("invalid_email")
	ErrMissingRole         = errors.New("missing_role")
	ErrDuplicateInvitation = errors.New("duplicate_invitation")
)

// InvitationService records join-organization invitations.
type InvitationService struct {
	Store store.Store
}

// CreateJoinOrganization validates and records an invitation on behalf of
// the authenticated user. At most one pending invitation may exist per
// email; the store's partial unique index enforces this under concurrency.
func (s *InvitationService) CreateJoinOrganization(ctx context.Context, invitedBy, email, role string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	role = strings.TrimSpace(role)

	if email == "" {
		return domain.Invitation{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Invitation{}, ErrInvalidEmail
	}
	if role == "" {
		return domain.Invitation{}, ErrMissingRole
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		Role:      role,
		Status:    domain.InvitationStatusPending,
		InvitedBy: invitedBy,
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Info("invitation rejected as duplicate", slog.String("email", email))
			return domain.Invitation{}, ErrDuplicateInvitation
		}
		log.Error("failed to create invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	log.Info("invitation created",
		slog.String("email", email),
		slog.String("role", role),
		slog.String("invited_by", invitedBy),
	)
	return inv, nil
}

// ListInvitations returns all invitations, newest first.
func (s *InvitationService) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListInvitations(ctx)
}

// RevokeInvitation cancels a pending invitation by email, freeing the
// address for a fresh invite.
func (s *InvitationService) RevokeInvitation(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	inv, err := s.Store.Invitations().GetPendingInvitationByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.Store.Invitations().UpdateInvitationStatus(ctx, inv.ID, domain.InvitationStatusRevoked)
}
