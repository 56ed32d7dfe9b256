package userhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// postJSON performs a single JSON POST and returns the response together with
// its fully read body. Transport failures are classified (NetworkError or
// CancelledError); HTTP-level failures are left to the caller, which knows
// which error class a non-2xx status maps to for its endpoint.
func (c *Client) postJSON(
	ctx context.Context,
	op, path, bearer string,
	payload any,
) (*http.Response, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, classifyTransportError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, classifyTransportError(op, err)
	}

	return resp, raw, nil
}

// getJSON performs a single GET and decodes a 200 response into target.
func (c *Client) getJSON(ctx context.Context, op, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(op, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s failed: %s", op, errorMessage(resp, raw))
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// is2xx reports whether the status code indicates success. Any other status
// is a failure regardless of body shape.
func is2xx(code int) bool {
	return code >= 200 && code < 300
}
