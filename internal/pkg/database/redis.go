package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// TTL sentinels, matching Redis semantics
const (
	TTLNoExpiry   int64 = -1
	TTLKeyMissing int64 = -2
)

// RedisClient is the TTL-keyed cache store shared by every service instance
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient creates a new Redis client and verifies the connection
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Get returns the value at key. found is false when the key does not exist.
func (r *RedisClient) Get(ctx context.Context, key string) (value string, found bool, err error) {
	value, err = r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value at key. A zero ttl stores the key without expiry.
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// Incr atomically increments the counter at key and returns the new value
func (r *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return r.Client.Incr(ctx, key).Result()
}

// Expire sets a TTL on key. It reports false when the key does not exist.
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.Client.Expire(ctx, key, ttl).Result()
}

// TTL returns the remaining life of key in whole seconds, or TTLKeyMissing /
// TTLNoExpiry.
func (r *RedisClient) TTL(ctx context.Context, key string) (int64, error) {
	d, err := r.Client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// go-redis reports -1 and -2 as raw nanosecond values
	if d < 0 {
		return int64(d), nil
	}
	return int64(d / time.Second), nil
}

// Exists reports whether key is present
func (r *RedisClient) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Del removes keys and returns how many existed
func (r *RedisClient) Del(ctx context.Context, keys ...string) (int64, error) {
	return r.Client.Del(ctx, keys...).Result()
}

// Ping checks the connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
