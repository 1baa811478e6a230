package credentials

import (
	"context"
	"testing"

	autherrors "github.com/ahmedalmoraly/clockin-system/internal/auth/errors"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/contextutil"
	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	bundle TokenBundle
	err    error
	calls  int
}

func (s *stubStore) Save(ctx context.Context, sessionID string, bundle TokenBundle) error {
	return nil
}

func (s *stubStore) Get(ctx context.Context, sessionID string) (TokenBundle, error) {
	s.calls++
	return s.bundle, s.err
}

func TestSessionProvider_AccessToken(t *testing.T) {
	store := &stubStore{bundle: TokenBundle{AccessToken: "ya29.token"}}
	provider := NewSessionProvider(store)

	ctx := contextutil.WithSessionID(context.Background(), "sess-1")
	token, err := provider.AccessToken(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "ya29.token", token)
}

func TestSessionProvider_NoSessionInContext(t *testing.T) {
	store := &stubStore{bundle: TokenBundle{AccessToken: "ya29.token"}}
	provider := NewSessionProvider(store)

	// No session id at all: fail before touching the store.
	_, err := provider.AccessToken(context.Background())
	assert.ErrorIs(t, err, autherrors.ErrNoCredentials)
	assert.Equal(t, 0, store.calls)
}

func TestSessionProvider_EmptyBundle(t *testing.T) {
	store := &stubStore{}
	provider := NewSessionProvider(store)

	ctx := contextutil.WithSessionID(context.Background(), "sess-1")
	_, err := provider.AccessToken(ctx)
	assert.ErrorIs(t, err, autherrors.ErrNoCredentials)
}

func TestStaticProvider(t *testing.T) {
	token, err := StaticProvider("tok").AccessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "tok", token)

	_, err = StaticProvider("").AccessToken(context.Background())
	assert.ErrorIs(t, err, autherrors.ErrNoCredentials)
}
