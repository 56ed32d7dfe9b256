package domain

import "time"

// Invitation statuses. Only one pending invitation may exist per email.
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusRevoked  = "revoked"
)

// Invitation is a join-organization invitation record.
type Invitation struct {
	ID        string
	Email     string
	Role      string // open string set; see service.InvitationService
	Status    string
	InvitedBy string // user id of the inviting session
	CreatedAt time.Time
	UpdatedAt time.Time
}
