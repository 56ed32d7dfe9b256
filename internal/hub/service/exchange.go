package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"userhub-go/internal/hub/domain"
	"userhub-go/internal/hub/store"
	"userhub-go/pkg/cryptox"
	"userhub-go/pkg/idx"
	"userhub-go/pkg/jwtx"
	"userhub-go/pkg/slogx"
)

var (
	ErrUnknownProvider      = errors.New("unknown_provider")
	ErrInvalidProviderToken = errors.New("invalid_provider_token")
)

// ExchangeService trades an external identity-provider token for a local
// session token. First sight of a (provider, token) pair provisions a
// federated user; later exchanges with the same token resolve to that user.
type ExchangeService struct {
	Store  store.Store
	Signer *jwtx.Signer
	TTL    time.Duration

	// Providers is the allow-list of accepted identity providers.
	Providers map[string]bool
}

func (s *ExchangeService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

// ExchangeToken validates the provider and token, resolving or provisioning
// the federated user, and returns a signed session token plus its lifetime
// in seconds.
func (s *ExchangeService) ExchangeToken(ctx context.Context, providerToken, provider string) (string, int, error) {
	log := slogx.FromContext(ctx)

	if !s.Providers[provider] {
		log.Info("token exchange rejected for unknown provider", slog.String("provider", provider))
		return "", 0, ErrUnknownProvider
	}
	if providerToken == "" {
		return "", 0, ErrInvalidProviderToken
	}

	fingerprint := cryptox.FingerprintToken(providerToken)

	ident, err := s.Store.Identities().GetIdentity(ctx, provider, fingerprint)
	switch {
	case err == nil:
		// Known identity; fall through to signing.
	case errors.Is(err, store.ErrNotFound):
		ident, err = s.provision(ctx, provider, fingerprint)
		if err != nil {
			log.Error("failed to provision federated user", slog.Any("error", err))
			return "", 0, err
		}
		log.Info("federated user provisioned",
			slog.String("provider", provider),
			slog.String("user_id", ident.UserID),
		)
	default:
		log.Error("failed to resolve identity", slog.Any("error", err))
		return "", 0, err
	}

	ttl := s.ttl()
	token, err := s.Signer.Sign(ident.UserID, AuthPathExchange, ttl)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", 0, err
	}

	log.Info("token exchanged",
		slog.String("provider", provider),
		slog.String("user_id", ident.UserID),
	)
	return token, int(ttl.Seconds()), nil
}

// provision creates the federated user and its identity atomically. A
// concurrent exchange of the same token loses the UNIQUE race and re-reads
// the winner's identity.
func (s *ExchangeService) provision(ctx context.Context, provider, fingerprint string) (domain.Identity, error) {
	ident := domain.Identity{
		ID:               idx.New().String(),
		Provider:         provider,
		TokenFingerprint: fingerprint,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user := domain.User{
			ID:       idx.New().String(),
			Username: fmt.Sprintf("%s:%s", provider, fingerprint[:12]),
			// no password hash; federated users cannot sign in by password
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}

		ident.UserID = user.ID
		return tx.Identities().CreateIdentity(ctx, ident)
	})
	if errors.Is(err, store.ErrDuplicate) {
		return s.Store.Identities().GetIdentity(ctx, provider, fingerprint)
	}
	if err != nil {
		return domain.Identity{}, err
	}
	return ident, nil
}
