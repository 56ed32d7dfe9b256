package userhub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSessionMock(t *testing.T, token string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /adminapi/users/create-api-session", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Username != "admin" || req.Password != "correct-horse" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid username or password."})
			return
		}
		_ = json.NewEncoder(w).Encode(CreateSessionResponse{SessionToken: token})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCreateAPISession(t *testing.T) {
	t.Parallel()

	t.Run("returns the issued token", func(t *testing.T) {
		srv := newSessionMock(t, "session-token-123")
		client := NewClient(srv.URL)

		tok, err := client.CreateAPISession(context.Background(), "admin", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, "session-token-123", tok.Token)
		require.Empty(t, tok.TokenType)
		require.Zero(t, tok.ExpiresIn)
	})

	t.Run("rejected credentials fail with AuthError", func(t *testing.T) {
		srv := newSessionMock(t, "unused")
		client := NewClient(srv.URL)

		tok, err := client.CreateAPISession(context.Background(), "admin", "wrong")
		require.Nil(t, tok)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		require.Equal(t, "Invalid username or password.", authErr.Message)
	})

	t.Run("missing sessionToken field fails with AuthError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"unexpected": "shape"}`))
		}))
		t.Cleanup(srv.Close)
		client := NewClient(srv.URL)

		tok, err := client.CreateAPISession(context.Background(), "admin", "correct-horse")
		require.Nil(t, tok)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Contains(t, authErr.Message, "sessionToken")
	})

	t.Run("non-JSON error body is handled defensively", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)
		client := NewClient(srv.URL)

		_, err := client.CreateAPISession(context.Background(), "admin", "correct-horse")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, http.StatusBadGateway, authErr.StatusCode)
		require.Contains(t, authErr.Message, "502")
	})

	t.Run("connection refused yields NetworkError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // free the port so the dial fails
		client := NewClient(srv.URL)

		_, err := client.CreateAPISession(context.Background(), "admin", "correct-horse")

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)

		var authErr *AuthError
		require.False(t, errors.As(err, &authErr), "transport failure must not be an AuthError")
	})

	t.Run("cancelled context yields CancelledError", func(t *testing.T) {
		blocked := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-blocked
		}))
		t.Cleanup(func() {
			close(blocked)
			srv.Close()
		})
		client := NewClient(srv.URL)

		ctx, cancel := context.WithCancel(context.Background())
		go cancel()

		_, err := client.CreateAPISession(ctx, "admin", "correct-horse")

		var cancelled *CancelledError
		require.ErrorAs(t, err, &cancelled)
		require.ErrorIs(t, err, context.Canceled)
	})
}
