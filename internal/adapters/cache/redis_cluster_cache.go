package cache

import (
	"container-cluster-service/internal/domain"
	"container-cluster-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClusterCache stores computed clusterings as JSON values with a TTL.
type RedisClusterCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisClusterCache(client *redis.Client, ttl time.Duration) *RedisClusterCache {
	return &RedisClusterCache{Client: client, TTL: ttl}
}

// Fetch a cached clustering. A missing key is not an error.
func (r *RedisClusterCache) Get(
	ctx context.Context,
	key string,
) (_ *domain.ContainerClustering, _ bool, err error) {
	defer obs.Time(ctx, "cluster.cache.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("cluster cache: client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get cluster cache: key must not be empty")
	}

	b, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cluster cache key=%q: %w", key, err)
	}

	var c domain.ContainerClustering
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, false, fmt.Errorf("get cluster cache key=%q: decode: %w", key, err)
	}

	return &c, true, nil
}

// Store a clustering under key for the configured TTL (0 keeps it forever).
func (r *RedisClusterCache) Put(
	ctx context.Context,
	key string,
	c *domain.ContainerClustering,
) (err error) {
	defer obs.Time(ctx, "cluster.cache.Put")(&err)

	if r.Client == nil {
		return errors.New("cluster cache: client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("put cluster cache: key must not be empty")
	}

	if c == nil {
		return errors.New("put cluster cache: clustering must not be nil")
	}

	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("put cluster cache key=%q: encode: %w", key, err)
	}

	if err := r.Client.Set(ctx, key, b, r.TTL).Err(); err != nil {
		return fmt.Errorf("put cluster cache key=%q: %w", key, err)
	}

	return nil
}
