package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"localconnect/pkg/logger"
)

// RedisStore keeps blobs in Redis under a namespaced key.
type RedisStore struct {
	client    *redis.Client
	namespace string
	logger    *logger.Logger
}

// RedisOptions configures the Redis-backed store.
type RedisOptions struct {
	RedisURL  string
	Namespace string // key prefix, e.g. "localconnect"
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(opts RedisOptions, log *logger.Logger) (*RedisStore, error) {
	if opts.RedisURL == "" {
		return nil, errors.New("redis URL is required")
	}

	redisOpt, err := redis.ParseURL(opts.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %v", err)
	}

	client := redis.NewClient(redisOpt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	store := &RedisStore{
		client:    client,
		namespace: opts.Namespace,
		logger:    log.WithComponent("redis_store"),
	}
	store.logger.Info("Redis store connected", "namespace", opts.Namespace)
	return store, nil
}

func (r *RedisStore) formatKey(key string) string {
	if r.namespace != "" {
		return fmt.Sprintf("%s:%s", r.namespace, key)
	}
	return key
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.formatKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %s failed: %v", key, err)
	}
	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	// No TTL: catalog data lives until overwritten
	if err := r.client.Set(ctx, r.formatKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s failed: %v", key, err)
	}
	r.logger.Debug("Persisted key to redis", "key", key, "bytes", len(value))
	return nil
}

func (r *RedisStore) Close() error {
	r.logger.Info("Closing redis store connection")
	return r.client.Close()
}
