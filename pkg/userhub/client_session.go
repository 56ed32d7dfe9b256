package userhub

import (
	"context"
	"encoding/json"
)

// CreateAPISession exchanges a username and password for a session token via
// the admin session-creation endpoint.
//
// The credentials are sent once and never stored. A non-2xx response, or a
// 2xx response whose body lacks the sessionToken field, fails with *AuthError.
// The SDK makes no retry; the caller decides how to handle transient failures.
func (c *Client) CreateAPISession(
	ctx context.Context,
	username, password string,
) (*SessionToken, error) {
	resp, body, err := c.postJSON(
		ctx,
		"create-api-session",
		"/adminapi/users/create-api-session",
		"",
		CreateSessionRequest{Username: username, Password: password},
	)
	if err != nil {
		return nil, err
	}

	if !is2xx(resp.StatusCode) {
		return nil, &AuthError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, body),
		}
	}

	var out CreateSessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &AuthError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
		}
	}
	if out.SessionToken == "" {
		return nil, &AuthError{
			StatusCode: resp.StatusCode,
			Message:    "response is missing the sessionToken field",
		}
	}

	// This endpoint reports neither expiry nor token type.
	return &SessionToken{Token: out.SessionToken}, nil
}

// GetLiveness checks the /livez probe. Only UserHub-compatible servers that
// expose health probes (such as hubd) answer this.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "livez", "/livez", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks the /readyz probe.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "readyz", "/readyz", &health); err != nil {
		return nil, err
	}
	return &health, nil
}
