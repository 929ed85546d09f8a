package storage

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "passing-stats:html:"

// RedisStore caches season pages in Redis with no expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedis connects to addr and verifies the server answers.
func NewRedis(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", addr)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(year int) string {
	return fmt.Sprintf("%s%d", redisKeyPrefix, year)
}

// Load returns the cached page. A missing or empty value is a miss.
func (s *RedisStore) Load(ctx context.Context, year int) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, redisKey(year)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading cached season %d", year)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

// Save stores page for year without expiry.
func (s *RedisStore) Save(ctx context.Context, year int, page []byte) error {
	if err := s.client.Set(ctx, redisKey(year), page, 0).Err(); err != nil {
		return errors.Wrapf(err, "writing cached season %d", year)
	}
	return nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
