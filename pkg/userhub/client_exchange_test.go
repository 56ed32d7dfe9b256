package userhub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExchangeToken(t *testing.T) {
	t.Parallel()

	newMock := func(t *testing.T) *httptest.Server {
		t.Helper()
		mux := http.NewServeMux()
		mux.HandleFunc("POST /userapi/session/exchange-token", func(w http.ResponseWriter, r *http.Request) {
			var req ExchangeTokenRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			if req.Provider != "google" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Unknown identity provider."})
				return
			}
			if req.ProviderToken == "" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid provider token."})
				return
			}
			_ = json.NewEncoder(w).Encode(ExchangeTokenResponse{
				SessionToken: "exchanged-" + req.ProviderToken,
				ExpiresIn:    3600,
				TokenType:    "Bearer",
			})
		})
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("returns token with expiry and type", func(t *testing.T) {
		client := NewClient(newMock(t).URL)

		tok, err := client.ExchangeToken(context.Background(), "oauth-abc", "google")
		require.NoError(t, err)
		require.Equal(t, "exchanged-oauth-abc", tok.Token)
		require.Equal(t, "Bearer", tok.TokenType)
		require.Equal(t, 3600, tok.ExpiresIn)
	})

	t.Run("unknown provider fails with AuthError", func(t *testing.T) {
		client := NewClient(newMock(t).URL)

		_, err := client.ExchangeToken(context.Background(), "oauth-abc", "myspace")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, http.StatusBadRequest, authErr.StatusCode)
		require.Equal(t, "Unknown identity provider.", authErr.Message)
	})

	t.Run("rejected provider token fails with AuthError", func(t *testing.T) {
		client := NewClient(newMock(t).URL)

		_, err := client.ExchangeToken(context.Background(), "", "google")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	})
}
