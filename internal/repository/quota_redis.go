// internal/repository/quota_redis.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/redis/go-redis/v9"
)

// Counters outlive their month by a margin so late releases still find them.
const redisQuotaTTL = 40 * 24 * time.Hour

const incrementQuotaScript = `
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if current >= tonumber(ARGV[1]) then
  return -1
end
current = redis.call("INCR", KEYS[1])
redis.call("PEXPIRE", KEYS[1], ARGV[2])
return current
`

const decrementQuotaScript = `
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if current <= 0 then
  return 0
end
return redis.call("DECR", KEYS[1])
`

// RedisQuotaStore keeps quota counters in redis. Check and increment run in a
// single Lua script, which redis executes atomically.
type RedisQuotaStore struct {
	client    *redis.Client
	prefix    string
	increment *redis.Script
	decrement *redis.Script
}

var _ quota.Store = (*RedisQuotaStore)(nil)

func NewRedisQuotaStore(client *redis.Client, prefix string) *RedisQuotaStore {
	if prefix == "" {
		prefix = "quota"
	}
	return &RedisQuotaStore{
		client:    client,
		prefix:    prefix,
		increment: redis.NewScript(incrementQuotaScript),
		decrement: redis.NewScript(decrementQuotaScript),
	}
}

// NewRedisClient parses url and verifies the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *RedisQuotaStore) redisKey(key quota.Key) string {
	return s.prefix + ":" + key.String()
}

func (s *RedisQuotaStore) Count(ctx context.Context, key quota.Key) (int, error) {
	n, err := s.client.Get(ctx, s.redisKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read quota counter: %w", err)
	}
	return n, nil
}

func (s *RedisQuotaStore) Increment(ctx context.Context, key quota.Key, limit int) (int, bool, error) {
	if limit <= 0 {
		return 0, false, nil
	}
	n, err := s.increment.Run(ctx, s.client, []string{s.redisKey(key)}, limit, redisQuotaTTL.Milliseconds()).Int()
	if err != nil {
		return 0, false, fmt.Errorf("failed to increment quota counter: %w", err)
	}
	if n < 0 {
		return limit, false, nil
	}
	return n, true, nil
}

func (s *RedisQuotaStore) Decrement(ctx context.Context, key quota.Key) error {
	if err := s.decrement.Run(ctx, s.client, []string{s.redisKey(key)}).Err(); err != nil {
		return fmt.Errorf("failed to decrement quota counter: %w", err)
	}
	return nil
}

func (s *RedisQuotaStore) Set(ctx context.Context, key quota.Key, count int) error {
	if err := s.client.Set(ctx, s.redisKey(key), count, redisQuotaTTL).Err(); err != nil {
		return fmt.Errorf("failed to set quota counter: %w", err)
	}
	return nil
}
