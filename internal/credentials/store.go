package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	autherrors "github.com/ahmedalmoraly/clockin-system/internal/auth/errors"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:credentials:"

// Sessions outlive the Google access token on purpose: the bundle is kept
// so an expired token surfaces as an auth failure instead of a vanished
// session. No refresh is attempted.
const sessionTTL = 30 * 24 * time.Hour

// TokenBundle is whatever the authorization server returned, stored opaquely.
// Expiry is never inspected here; a stale token fails at the remote store.
type TokenBundle struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty"`
}

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, sessionID string, bundle TokenBundle) error
	Get(ctx context.Context, sessionID string) (TokenBundle, error)
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Save(ctx context.Context, sessionID string, bundle TokenBundle) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+sessionID, payload, sessionTTL).Err()
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (TokenBundle, error) {
	val, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return TokenBundle{}, autherrors.ErrSessionNotFound
		}
		return TokenBundle{}, err
	}

	var bundle TokenBundle
	if err := json.Unmarshal([]byte(val), &bundle); err != nil {
		return TokenBundle{}, err
	}
	return bundle, nil
}
