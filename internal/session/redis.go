package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "sess:"

// RedisStore keeps each session in a Redis hash with a TTL refreshed on every
// write, so idle sessions expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (map[string]string, error) {
	values, err := s.client.HGetAll(ctx, keyPrefix+sid).Result()
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string) error {
	name := keyPrefix + sid
	if err := s.client.HSet(ctx, name, key, value).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, name, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, keyPrefix+sid).Err()
}
