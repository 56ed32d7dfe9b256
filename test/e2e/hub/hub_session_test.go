package hub_test

import (
	"errors"
	"testing"

	"userhub-go/pkg/userhub"

	"github.com/stretchr/testify/require"
)

// TestCreateAPISession verifies password authentication against a seeded user.
func TestCreateAPISession(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	token, err := client.CreateAPISession(t.Context(), adminUsername, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
}

// TestCreateAPISessionBadCredentials verifies wrong passwords and unknown
// usernames both surface as an AuthError with the server's message.
func TestCreateAPISessionBadCredentials(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.CreateAPISession(t.Context(), adminUsername, "wrong-password")

		var authErr *userhub.AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, 401, authErr.StatusCode)
		require.Equal(t, "Invalid username or password.", authErr.Message)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := client.CreateAPISession(t.Context(), "nobody", adminPassword)

		var authErr *userhub.AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, 401, authErr.StatusCode)
	})
}

// TestExchangeToken verifies the provider token exchange path end to end.
func TestExchangeToken(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	token, err := client.ExchangeToken(t.Context(), "opaque-google-token", "google")
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	require.Equal(t, "Bearer", token.TokenType)
	require.Positive(t, token.ExpiresIn)
}

// TestExchangeTokenRejections verifies unknown providers and empty tokens fail.
func TestExchangeTokenRejections(t *testing.T) {
	baseURL := setupHub(t)
	client := userhub.NewClient(baseURL)

	t.Run("unknown provider", func(t *testing.T) {
		_, err := client.ExchangeToken(t.Context(), "opaque-token", "myspace")

		var authErr *userhub.AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, 400, authErr.StatusCode)
		require.Equal(t, "Unknown identity provider.", authErr.Message)
	})

	t.Run("empty provider token", func(t *testing.T) {
		_, err := client.ExchangeToken(t.Context(), "", "google")

		var authErr *userhub.AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, 401, authErr.StatusCode)
	})
}

// TestNetworkErrorClassification verifies connection failures surface as
// NetworkError rather than an auth failure.
func TestNetworkErrorClassification(t *testing.T) {
	client := userhub.NewClient("http://127.0.0.1:1")

	_, err := client.CreateAPISession(t.Context(), adminUsername, adminPassword)

	var netErr *userhub.NetworkError
	require.ErrorAs(t, err, &netErr)

	var authErr *userhub.AuthError
	require.False(t, errors.As(err, &authErr))
}
