package userhub

// ============================================================================
// Wire Types
// ============================================================================
//
// These types mirror the documented UserHub wire contract field for field.
// They are exported so that the emulator's HTTP handlers (and any compatible
// server) can reuse them instead of redeclaring the JSON shapes.

// ErrorResponse is the error body returned by every endpoint on failure.
// Error responses are not guaranteed to carry this shape; the SDK parses
// them defensively (see errorMessage).
type ErrorResponse struct {
	// Error is a human-readable description of what went wrong
	Error string `json:"error"`
}

// CreateSessionRequest is the body of POST /adminapi/users/create-api-session.
type CreateSessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateSessionResponse is the success body of the session-creation endpoint.
type CreateSessionResponse struct {
	SessionToken string `json:"sessionToken"`
}

// ExchangeTokenRequest is the body of POST /userapi/session/exchange-token.
type ExchangeTokenRequest struct {
	ProviderToken string `json:"providerToken"`
	Provider      string `json:"provider"`
}

// ExchangeTokenResponse is the success body of the token-exchange endpoint.
// Unlike session creation, the exchange endpoint also reports the token's
// lifetime and type.
type ExchangeTokenResponse struct {
	SessionToken string `json:"sessionToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}

// InvitationRequest is the body of POST /userapi/flows/create-join-organization.
type InvitationRequest struct {
	// Email is the address being invited to join the organization
	Email string `json:"email"`

	// Role is the role identifier the invitee will receive. The set of
	// recognized roles is open and validated server-side.
	Role string `json:"role"`
}

// InvitationResult is the success body of the invitation endpoint.
type InvitationResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is returned by the /livez and /readyz probes of the emulator.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// ============================================================================
// Client-side Types
// ============================================================================

// SessionToken is the opaque bearer credential issued by the remote service.
// Tokens from either authentication path are interchangeable: the SDK never
// assumes which endpoint produced one. The caller owns the token's lifetime;
// the SDK does not cache or renew it.
type SessionToken struct {
	// Token is the opaque bearer value
	Token string

	// TokenType is the token type when the issuing endpoint reports one
	// (the exchange endpoint returns "Bearer"); empty otherwise
	TokenType string

	// ExpiresIn is the token lifetime in seconds, or 0 when the issuing
	// endpoint does not report an expiry
	ExpiresIn int
}
