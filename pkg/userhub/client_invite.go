package userhub

import (
	"context"
	"encoding/json"
	"net/mail"
)

// SendInvitation asks the service to create a join-organization invitation
// for the given email and role, authorized by the provided session token.
//
// The email must be non-empty and structurally valid; the SDK checks this
// before sending, but the server remains the authority on acceptance
// (duplicate invitations, unrecognized roles and expired sessions are all
// rejected server-side and surface as *InvitationError with the server's
// message). One round trip, no retry, no idempotency key: calling twice may
// create duplicate remote state, observed as a server-side duplicate error.
func (c *Client) SendInvitation(
	ctx context.Context,
	tok *SessionToken,
	email, role string,
) (*InvitationResult, error) {
	if tok == nil || tok.Token == "" {
		return nil, &InvitationError{Message: "session token is required"}
	}
	if err := validateInvitation(email, role); err != nil {
		return nil, err
	}

	resp, body, err := c.postJSON(
		ctx,
		"create-join-organization",
		"/userapi/flows/create-join-organization",
		tok.Token,
		InvitationRequest{Email: email, Role: role},
	)
	if err != nil {
		return nil, err
	}

	if !is2xx(resp.StatusCode) {
		return nil, &InvitationError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, body),
		}
	}

	var result InvitationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &InvitationError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
		}
	}
	if result.Status == "" {
		// The documented success shape always carries a status; a 2xx
		// without one is still a success, just underreported.
		result.Status = "success"
	}

	return &result, nil
}

// validateInvitation applies the client-side input constraints. Anything
// subtler than structure (duplicates, role authorization) is the server's
// call.
func validateInvitation(email, role string) error {
	if email == "" {
		return &InvitationError{Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &InvitationError{Message: "email is not a valid address"}
	}
	if role == "" {
		return &InvitationError{Message: "role is required"}
	}
	return nil
}
