package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"vouch/internal/verification/models"
)

// Redis key prefix for screening entries.
const screeningKeyPrefix = "vouch:aml:"

// RedisStore is the Redis-backed screening cache for multi-instance
// deployments. TTL enforcement is delegated to Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client; lifecycle stays with the caller.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*models.AMLScreeningResult, error) {
	raw, err := s.client.Get(ctx, screeningKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	var result models.AMLScreeningResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, result models.AMLScreeningResult, ttl time.Duration) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, screeningKeyPrefix+key, encoded, ttl).Err()
}
