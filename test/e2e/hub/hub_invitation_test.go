package hub_test

import (
	"testing"

	"userhub-go/pkg/userhub"

	"github.com/stretchr/testify/require"
)

// TestInvitationFlow runs the full journey: password authentication followed
// by a join-organization invitation.
func TestInvitationFlow(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	token, err := client.CreateAPISession(t.Context(), adminUsername, adminPassword)
	require.NoError(t, err)

	result, err := client.SendInvitation(t.Context(), token, "new.member@example.com", "developer")
	require.NoError(t, err)
	require.Equal(t, "success", result.Status)
	require.Contains(t, result.Message, "new.member@example.com")
}

// TestInvitationWithExchangedToken verifies tokens from either authentication
// path are interchangeable for sending invitations.
func TestInvitationWithExchangedToken(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	token, err := client.ExchangeToken(t.Context(), "opaque-github-token", "github")
	require.NoError(t, err)

	session := client.Session(token)
	result, err := session.SendInvitation(t.Context(), "federated.invite@example.com", "viewer")
	require.NoError(t, err)
	require.Equal(t, "success", result.Status)
}

// TestInvitationInvalidToken verifies a bogus bearer token gets the canonical
// 401 message.
func TestInvitationInvalidToken(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	bogus := &userhub.SessionToken{Token: "not-a-real-token"}
	_, err := client.SendInvitation(t.Context(), bogus, "someone@example.com", "viewer")

	var invErr *userhub.InvitationError
	require.ErrorAs(t, err, &invErr)
	require.Equal(t, 401, invErr.StatusCode)
	require.Equal(t, "Invalid session token. Please authenticate again.", invErr.Message)
}

// TestInvitationDuplicate verifies the second pending invitation for the same
// email is rejected with a conflict.
func TestInvitationDuplicate(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	token, err := client.CreateAPISession(t.Context(), adminUsername, adminPassword)
	require.NoError(t, err)

	_, err = client.SendInvitation(t.Context(), token, "dup@example.com", "viewer")
	require.NoError(t, err)

	_, err = client.SendInvitation(t.Context(), token, "dup@example.com", "viewer")

	var invErr *userhub.InvitationError
	require.ErrorAs(t, err, &invErr)
	require.Equal(t, 409, invErr.StatusCode)
	require.Equal(t, "An invitation for this email is already pending.", invErr.Message)
}

// TestInvitationValidation verifies bad inputs fail locally without reaching
// the server.
func TestInvitationValidation(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	token, err := client.CreateAPISession(t.Context(), adminUsername, adminPassword)
	require.NoError(t, err)

	t.Run("malformed email", func(t *testing.T) {
		_, err := client.SendInvitation(t.Context(), token, "not-an-email", "viewer")

		var invErr *userhub.InvitationError
		require.ErrorAs(t, err, &invErr)
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := client.SendInvitation(t.Context(), token, "someone@example.com", "")

		var invErr *userhub.InvitationError
		require.ErrorAs(t, err, &invErr)
	})
}
