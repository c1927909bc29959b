package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// redisKeyPrefix 所有 AI 快取鍵的前綴
const redisKeyPrefix = "grocery-genius:ai:"

// RedisStore 以 Redis 儲存 AI 回應，跨實例共用
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore 建立 Redis 快取並測試連線
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 3 * time.Second,
	})

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return newRedisStore(client, ttl), nil
}

func newRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get 獲取緩存
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.misses.Add(1)
			return "", common.ErrCacheMiss
		}
		s.errors.Add(1)
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	s.hits.Add(1)
	return val, nil
}

// Set 設置緩存
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, s.ttl).Err(); err != nil {
		s.errors.Add(1)
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Stats 快取統計（大小由 Redis 管理，不另行計算）
func (s *RedisStore) Stats() Stats {
	hits, misses := s.hits.Load(), s.misses.Load()
	return Stats{
		Backend:  config.CacheBackendRedis,
		Hits:     hits,
		Misses:   misses,
		Errors:   s.errors.Load(),
		HitRatio: hitRatio(hits, misses),
	}
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
