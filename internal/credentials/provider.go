package credentials

import (
	"context"

	autherrors "github.com/ahmedalmoraly/clockin-system/internal/auth/errors"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/contextutil"
)

//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock

// Provider hands the spreadsheet bearer token to the data-access layer
// without coupling it to how sessions are persisted. Implementations must
// fail with an auth error BEFORE any remote call when no token is available.
type Provider interface {
	AccessToken(ctx context.Context) (string, error)
}

type sessionProvider struct {
	store Store
}

// NewSessionProvider resolves tokens from the session id carried in the
// request context by the auth middleware.
func NewSessionProvider(store Store) Provider {
	return &sessionProvider{store: store}
}

func (p *sessionProvider) AccessToken(ctx context.Context) (string, error) {
	sessionID := contextutil.GetSessionID(ctx)
	if sessionID == "" {
		return "", autherrors.ErrNoCredentials
	}

	bundle, err := p.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if bundle.AccessToken == "" {
		return "", autherrors.ErrNoCredentials
	}
	return bundle.AccessToken, nil
}

// StaticProvider returns a fixed token; used by tests and one-shot tooling.
type StaticProvider string

func (p StaticProvider) AccessToken(context.Context) (string, error) {
	if p == "" {
		return "", autherrors.ErrNoCredentials
	}
	return string(p), nil
}
