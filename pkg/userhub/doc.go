/*
Package userhub provides a client SDK for a UserHub-compatible identity and
membership API: the hosted UserHub service, or the local hubd emulator
shipped in this repository.

# Overview

The SDK wraps the three documented endpoints of the service:

  - POST /adminapi/users/create-api-session (password authentication)
  - POST /userapi/session/exchange-token (provider token exchange)
  - POST /userapi/flows/create-join-organization (invitation creation)

Each operation is a single HTTP round trip. The client is stateless: it does
not cache session tokens, does not refresh them, and does not retry failed
requests. Callers own the token lifetime and the retry policy.

# Authenticating

Either authentication path produces a session token, and the two are
interchangeable as bearer credentials:

	client := userhub.NewClient("https://api.userhub.example.com")

	// Password path
	tok, err := client.CreateAPISession(ctx, "admin", "password")

	// Provider token exchange path
	tok, err = client.ExchangeToken(ctx, oauthToken, "google")

# Sending an invitation

Pass the token explicitly, or bind it once with Session:

	result, err := client.SendInvitation(ctx, tok, "invitee@example.com", "member")

	sess := client.Session(tok)
	result, err = sess.SendInvitation(ctx, "invitee@example.com", "member")

Role identifiers are an open string set; the server decides which roles a
session may grant.

# Error Handling

Failures are classified into four typed errors, matched with errors.As:

	_, err := client.SendInvitation(ctx, tok, email, role)
	var invErr *userhub.InvitationError
	if errors.As(err, &invErr) {
		// Server rejected the invitation; invErr.Message is the server's
		// wording (duplicate invitation, expired session, ...).
	}

See errors.go for the full taxonomy: NetworkError, CancelledError, AuthError,
InvitationError.

# Timeouts

NewClient installs a 30 second request timeout. Replace HTTPClient to change
it:

	client := userhub.NewClient(baseURL)
	client.HTTPClient = &http.Client{Timeout: 5 * time.Second}
*/
package userhub
