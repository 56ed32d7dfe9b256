package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"userhub-go/internal/hub/store"
	"userhub-go/pkg/cryptox"
	"userhub-go/pkg/jwtx"
	"userhub-go/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
)

// AuthPath values recorded in session claims so downstream consumers can
// tell how a session was established.
const (
	AuthPathPassword = "password"
	AuthPathExchange = "exchange"
)

// SessionService issues and verifies API session tokens.
type SessionService struct {
	Store  store.Store
	Signer *jwtx.Signer
	TTL    time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

// CreateAPISession validates a username/password pair and returns a signed
// session token. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *SessionService) CreateAPISession(ctx context.Context, username, password string) (string, error) {
	log := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("session rejected for unknown username", slog.String("username", username))
			return "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", err
	}

	// Federated users carry no password hash and cannot use this path.
	if user.PasswordHash == "" {
		log.Info("session rejected for passwordless user", slog.String("user_id", user.ID))
		return "", ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("session rejected for bad password", slog.String("user_id", user.ID))
			return "", ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return "", err
	}

	token, err := s.Signer.Sign(user.ID, AuthPathPassword, s.ttl())
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", err
	}

	log.Info("api session created", slog.String("user_id", user.ID))
	return token, nil
}

// VerifySession validates a bearer token and returns the subject user id.
func (s *SessionService) VerifySession(ctx context.Context, token string) (string, error) {
	claims, err := s.Signer.Verify(token)
	if err != nil {
		return "", ErrInvalidSession
	}

	// The subject must still exist; federated users may be pruned.
	if _, err := s.Store.Users().GetUserByID(ctx, claims.Subject); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}

	return claims.Subject, nil
}
