package cache

import (
	"context"
	"errors"
	"time"

	"rocket_help/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "session:revoked:"

var ErrEmptyTokenID = errors.New("empty token id")

// RedisAPI is the subset of *redis.Client used by the revocation store.
type RedisAPI interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ RedisAPI = (*redis.Client)(nil)

// RedisRevocationStore keeps signed-out token ids until they expire.
type RedisRevocationStore struct {
	client RedisAPI
}

var _ interfaces.ISessionRevoker = (*RedisRevocationStore)(nil)

func NewRedisRevocationStore(client RedisAPI) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func revokedKey(tokenID string) string {
	return revokedKeyPrefix + tokenID
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrEmptyTokenID
	}
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
