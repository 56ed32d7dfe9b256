package userhub

import (
	"context"
	"encoding/json"
)

// ExchangeToken converts a third-party provider token (e.g. an OAuth token
// from "google" or "github") into a UserHub session token via the
// token-exchange endpoint.
//
// The resulting SessionToken is interchangeable with one obtained from
// CreateAPISession: either works as the bearer credential for SendInvitation.
// This endpoint additionally reports the token's lifetime and type when the
// server provides them. Failure contract matches CreateAPISession: non-2xx or
// a missing sessionToken field fails with *AuthError, single attempt only.
func (c *Client) ExchangeToken(
	ctx context.Context,
	providerToken, provider string,
) (*SessionToken, error) {
	resp, body, err := c.postJSON(
		ctx,
		"exchange-token",
		"/userapi/session/exchange-token",
		"",
		ExchangeTokenRequest{ProviderToken: providerToken, Provider: provider},
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

	var out ExchangeTokenResponse
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

	return &SessionToken{
		Token:     out.SessionToken,
		TokenType: out.TokenType,
		ExpiresIn: out.ExpiresIn,
	}, nil
}
