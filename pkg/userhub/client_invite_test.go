package userhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// inviteMock emulates the full authenticate-then-invite surface: both token
// paths issue tokens that the invitation endpoint accepts, and duplicate
// pending invitations are rejected like the real service does.
type inviteMock struct {
	mu      sync.Mutex
	tokens  map[string]bool
	invited map[string]bool
}

func newInviteMock(t *testing.T) (*inviteMock, *httptest.Server) {
	t.Helper()

	m := &inviteMock{
		tokens:  make(map[string]bool),
		invited: make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /adminapi/users/create-api-session", func(w http.ResponseWriter, r *http.Request) {
		tok := m.issue("password")
		_ = json.NewEncoder(w).Encode(CreateSessionResponse{SessionToken: tok})
	})
	mux.HandleFunc("POST /userapi/session/exchange-token", func(w http.ResponseWriter, r *http.Request) {
		tok := m.issue("exchange")
		_ = json.NewEncoder(w).Encode(ExchangeTokenResponse{
			SessionToken: tok,
			ExpiresIn:    3600,
			TokenType:    "Bearer",
		})
	})
	mux.HandleFunc("POST /userapi/flows/create-join-organization", func(w http.ResponseWriter, r *http.Request) {
		bearer := r.Header.Get("Authorization")

		m.mu.Lock()
		defer m.mu.Unlock()

		if !m.tokens[bearer] {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid session token. Please authenticate again."})
			return
		}

		var req InvitationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Role == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Email and role are required."})
			return
		}
		if m.invited[req.Email] {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "An invitation for this email is already pending."})
			return
		}
		m.invited[req.Email] = true

		_ = json.NewEncoder(w).Encode(InvitationResult{
			Status:  "success",
			Message: fmt.Sprintf("Invitation sent to %s.", req.Email),
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return m, srv
}

func (m *inviteMock) issue(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	tok := fmt.Sprintf("%s-token-%d", path, len(m.tokens))
	m.tokens["Bearer "+tok] = true
	return tok
}

func TestSendInvitation(t *testing.T) {
	t.Parallel()

	t.Run("success with password-path token", func(t *testing.T) {
		_, srv := newInviteMock(t)
		client := NewClient(srv.URL)

		tok, err := client.CreateAPISession(context.Background(), "admin", "pw")
		require.NoError(t, err)

		result, err := client.SendInvitation(context.Background(), tok, "invitee@example.com", "member")
		require.NoError(t, err)
		require.Equal(t, "success", result.Status)
		require.Contains(t, result.Message, "invitee@example.com")
	})

	t.Run("exchange-path token is interchangeable", func(t *testing.T) {
		_, srv := newInviteMock(t)
		client := NewClient(srv.URL)

		tok, err := client.ExchangeToken(context.Background(), "oauth-abc", "google")
		require.NoError(t, err)

		result, err := client.Session(tok).SendInvitation(context.Background(), "invitee@example.com", "member")
		require.NoError(t, err)
		require.Equal(t, "success", result.Status)
	})

	t.Run("invalid session token surfaces the server message", func(t *testing.T) {
		_, srv := newInviteMock(t)
		client := NewClient(srv.URL)

		stale := &SessionToken{Token: "expired-token"}
		_, err := client.SendInvitation(context.Background(), stale, "invitee@example.com", "member")

		var invErr *InvitationError
		require.ErrorAs(t, err, &invErr)
		require.Equal(t, http.StatusUnauthorized, invErr.StatusCode)
		require.Equal(t, "Invalid session token. Please authenticate again.", invErr.Message)
	})

	t.Run("duplicate invitation fails on the second call only", func(t *testing.T) {
		_, srv := newInviteMock(t)
		client := NewClient(srv.URL)

		tok, err := client.CreateAPISession(context.Background(), "admin", "pw")
		require.NoError(t, err)

		first, err := client.SendInvitation(context.Background(), tok, "dup@example.com", "member")
		require.NoError(t, err)
		require.Equal(t, "success", first.Status)

		_, err = client.SendInvitation(context.Background(), tok, "dup@example.com", "member")
		var invErr *InvitationError
		require.ErrorAs(t, err, &invErr)
		require.Equal(t, http.StatusConflict, invErr.StatusCode)
		require.Contains(t, invErr.Message, "already pending")
	})

	t.Run("input validation happens before any request", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1") // would fail if dialed
		tok := &SessionToken{Token: "tok"}

		for _, tc := range []struct {
			name, email, role string
		}{
			{"empty email", "", "member"},
			{"malformed email", "not-an-address", "member"},
			{"empty role", "invitee@example.com", ""},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := client.SendInvitation(context.Background(), tok, tc.email, tc.role)
				var invErr *InvitationError
				require.ErrorAs(t, err, &invErr)
				require.Zero(t, invErr.StatusCode)
			})
		}
	})

	t.Run("missing token fails without a request", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1")

		_, err := client.SendInvitation(context.Background(), nil, "invitee@example.com", "member")
		var invErr *InvitationError
		require.ErrorAs(t, err, &invErr)
		require.Contains(t, invErr.Message, "session token")
	})
}
