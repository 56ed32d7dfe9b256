package userhub

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds each request made by a Client created with NewClient.
// The hosted service documents no timeout of its own, so the SDK picks a sane
// default. Override it by swapping in a custom HTTPClient.
const DefaultTimeout = 30 * time.Second

// Client is a stateless client for a UserHub-compatible membership API.
// It exchanges credentials or provider tokens for session tokens and sends
// join-organization invitations on behalf of an authenticated caller.
//
// The zero Client is not usable; construct one with NewClient. A Client holds
// no mutable state (session tokens are passed in by the caller, never cached),
// so a single instance is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Session binds a caller-owned session token to this client for convenience.
// The token may come from CreateAPISession or ExchangeToken; both paths mint
// interchangeable bearer credentials. The Session never refreshes or stores
// anything beyond what the caller passed in.
func (c *Client) Session(tok *SessionToken) *Session {
	return &Session{client: c, token: tok}
}
