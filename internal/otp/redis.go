package otp

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps codes in Redis with a native TTL so multiple instances
// share the same pending codes.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the given Redis URL
// (redis://[user:pass@]host:port/db) and verifies the connection.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(email string) string {
	return "otp:" + key(email)
}

func (s *RedisStore) Put(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, redisKey(email), code, TTL).Err()
}

// verifyScript compares and deletes in a single Redis call, so concurrent
// verifications of the same code can succeed at most once. A mismatch leaves
// the pending code in place.
var verifyScript = redis.NewScript(
	`if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`,
)

func (s *RedisStore) Verify(ctx context.Context, email, code string) (bool, error) {
	deleted, err := verifyScript.Run(ctx, s.client, []string{redisKey(email)}, code).Int()
	if err != nil {
		return false, err
	}
	return deleted == 1, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
