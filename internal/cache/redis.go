package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// tagTTL bounds how long an unused tag index lingers.
const tagTTL = 24 * time.Hour

// RedisStore is a Store shared by every server instance. Tags are Redis sets.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a RedisStore; prefix namespaces every key it writes.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return b, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, s.prefixed(keys)...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (s *RedisStore) Tag(ctx context.Context, tag, key string) error {
	tagKey := s.tagKey(tag)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, tagKey, key)
		pipe.Expire(ctx, tagKey, tagTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache tag %s: %w", tag, err)
	}
	return nil
}

func (s *RedisStore) InvalidateTag(ctx context.Context, tag string) error {
	tagKey := s.tagKey(tag)
	members, err := s.client.SMembers(ctx, tagKey).Result()
	if err != nil {
		return fmt.Errorf("cache invalidate tag %s: %w", tag, err)
	}

	keys := append(s.prefixed(members), tagKey)
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate tag %s: %w", tag, err)
	}
	return nil
}

func (s *RedisStore) tagKey(tag string) string {
	return s.prefix + "tag:" + tag
}

func (s *RedisStore) prefixed(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = s.prefix + k
	}
	return out
}
