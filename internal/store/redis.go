package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps the session blob under a fixed namespaced key with a
// session-length TTL, so state survives a dashboard restart but not forever.
type RedisBackend struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisBackend(client *redis.Client, namespace string, ttl time.Duration) *RedisBackend {
	return &RedisBackend{
		client: client,
		key:    "dashboard:session:" + namespace,
		ttl:    ttl,
	}
}

func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *RedisBackend) Save(ctx context.Context, data []byte) error {
	return b.client.Set(ctx, b.key, data, b.ttl).Err()
}
