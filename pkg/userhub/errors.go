package userhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// The SDK classifies every failure into one of four typed errors so callers
// can branch with errors.As instead of matching message strings:
//
//   - *NetworkError: the request never produced a response (connection
//     refused, DNS failure, timeout).
//   - *CancelledError: the caller aborted an in-flight request through its
//     context. Never conflated with the other classes.
//   - *AuthError: the session-creation or token-exchange endpoint rejected
//     the request, or returned a body without a session token.
//   - *InvitationError: the invitation endpoint rejected the request; the
//     server's message (duplicate invitation, invalid session, unauthorized
//     role, ...) is carried verbatim.
//
// None of these are recovered locally. The SDK makes exactly one attempt per
// call; retry policy belongs to the caller.

// AuthError reports a rejected or malformed authentication exchange.
type AuthError struct {
	// StatusCode is the HTTP status of the response, or 0 when the failure
	// was detected locally (e.g. a 2xx body missing the sessionToken field
	// still carries the 2xx status).
	StatusCode int

	// Message is the server-provided error message when one could be
	// parsed, otherwise a description of what was wrong with the response.
	Message string
}

func (e *AuthError) Error() string {
	return "userhub: authentication failed: " + e.Message
}

// InvitationError reports an invitation request rejected by the server.
type InvitationError struct {
	StatusCode int
	Message    string
}

func (e *InvitationError) Error() string {
	return "userhub: invitation rejected: " + e.Message
}

// NetworkError reports a transport-level failure: no usable response was
// received. It wraps the underlying error for errors.Is/As inspection.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("userhub: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// CancelledError reports a caller-initiated abort of an in-flight request.
type CancelledError struct {
	Op  string
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("userhub: %s cancelled: %v", e.Op, e.Err)
}

func (e *CancelledError) Unwrap() error { return e.Err }

// classifyTransportError maps a transport failure onto the error taxonomy.
// context.Canceled is a caller abort; everything else, including a deadline
// exceeded (a timeout is not an abort), is a network failure.
func classifyTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return &CancelledError{Op: op, Err: err}
	}
	return &NetworkError{Op: op, Err: err}
}

// errorMessage extracts a usable message from an error response body.
// The documented shape is {"error": "..."} but the service does not guarantee
// it, so fall back progressively: a "message" field, the raw body if it is
// short printable text, and finally the HTTP status.
func errorMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	if s := strings.TrimSpace(string(body)); s != "" && len(s) <= 200 {
		return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, s)
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
