package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/finanzas-genius/backend/internal/application/adapter"
)

// redisKeyPrefix namespaces the documents inside a shared Redis instance.
const redisKeyPrefix = "finanzas:"

// redisStore implements adapter.KVStore on Redis, one string value per
// storage key.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed KV store.
func NewRedisStore(client *redis.Client) adapter.KVStore {
	return &redisStore{
		client: client,
	}
}

// Load returns the document stored under key, or (nil, nil) when absent.
func (s *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// Save overwrites the document stored under key.
func (s *redisStore) Save(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

// DeleteAll removes every stored document. Keys are enumerated from the fixed
// storage-key set rather than scanned, so unrelated data in the same Redis
// database is never touched.
func (s *redisStore) DeleteAll(ctx context.Context) error {
	keys := []string{
		redisKeyPrefix + adapter.KeyAccounts,
		redisKeyPrefix + adapter.KeyTransactions,
		redisKeyPrefix + adapter.KeySubscriptions,
		redisKeyPrefix + adapter.KeyGoals,
		redisKeyPrefix + adapter.KeyDebts,
		redisKeyPrefix + adapter.KeySettings,
		redisKeyPrefix + adapter.KeyEmailQueue,
	}
	return s.client.Del(ctx, keys...).Err()
}
