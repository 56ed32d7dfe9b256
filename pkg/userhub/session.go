package userhub

import "context"

// Session pairs a Client with a caller-owned session token so the token does
// not have to be threaded through every call site.
//
// A Session is a plain binding, not a lifecycle manager: it never refreshes,
// caches or revokes the token. When the token expires the next call fails
// with *InvitationError and the caller re-authenticates. Sessions are safe
// for concurrent use because neither side mutates.
type Session struct {
	client *Client
	token  *SessionToken
}

// Token returns the bound session token.
func (s *Session) Token() *SessionToken { return s.token }

// SendInvitation sends a join-organization invitation using the bound token.
// See Client.SendInvitation for the full contract.
func (s *Session) SendInvitation(ctx context.Context, email, role string) (*InvitationResult, error) {
	return s.client.SendInvitation(ctx, s.token, email, role)
}
