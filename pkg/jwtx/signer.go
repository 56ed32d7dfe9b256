// Package jwtx mints and verifies the EdDSA-signed session tokens issued by
// the hubd emulator. Clients treat these tokens as opaque strings; only the
// emulator signs and inspects them.
package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"userhub-go/pkg/idx"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the token lifetime used when the caller does not
// configure one.
const DefaultSessionTTL = time.Hour

// ErrInvalidToken is returned by Verify for any token that does not parse,
// verify, or satisfy the registered claims.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Claims are the registered JWT claims plus the authentication path that
// minted the token.
type Claims struct {
	jwt.RegisteredClaims

	// AuthPath records how the session was established ("password" or
	// "exchange"). Informational only; tokens are interchangeable
	// regardless of path.
	AuthPath string `json:"auth_path,omitempty"`
}

// Signer signs and verifies session tokens with an Ed25519 keypair.
// Keys are generated fresh at construction; restarting the emulator
// invalidates outstanding sessions, which is acceptable for a dev tool.
type Signer struct {
	Issuer string

	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewSigner generates a keypair and returns a Signer for the given issuer.
func NewSigner(issuer string) (*Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate signing key: %w", err)
	}
	return &Signer{Issuer: issuer, priv: priv, pub: pub}, nil
}

// Sign mints a session token for subject, valid for ttl.
func (s *Signer) Sign(subject, authPath string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   subject,
			ID:        idx.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AuthPath: authPath,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.priv)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to sign token: %w", err)
	}
	return token, nil
}

// Verify parses raw and returns its claims if the signature, issuer and
// expiry all check out.
func (s *Signer) Verify(raw string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.pub, nil
	},
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
