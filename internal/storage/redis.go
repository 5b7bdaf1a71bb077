package storage

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/paragonforge/planner-api/internal/errors"
	redisclient "github.com/paragonforge/planner-api/internal/redis"
)

type redisStore struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed record store. Records are durable; no
// TTL is applied.
func NewRedis(client redisclient.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	result, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("record %q not found", key)
		}
		return nil, errors.Wrapf(err, "failed to get record %q", key)
	}

	return []byte(result), nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set record %q", key)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete record %q", key)
	}
	return nil
}
