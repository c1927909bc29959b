package cache

import (
	"context"
	"fmt"

	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"go.uber.org/zap"
)

// Store AI 回應快取。找不到或過期時 Get 回傳 common.ErrCacheMiss
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Stats() Stats
	Close() error
}

// Stats 快取統計
type Stats struct {
	Backend   string  `json:"backend"`
	Size      int     `json:"size"`
	MaxSize   int     `json:"max_size,omitempty"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Errors    int64   `json:"errors"`
	HitRatio  float64 `json:"hit_ratio"`
}

func hitRatio(hits, misses int64) float64 {
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses)
}

// NewStore 依設定建立快取；停用時回傳 nil
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		store, err := NewRedisStore(ctx, cfg.Redis, cfg.Cache.TTL)
		if err != nil {
			return nil, err
		}
		common.LogInfo("Redis 快取已連線", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
		return store, nil
	case config.CacheBackendMemory, "":
		return NewManager(cfg.Cache), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
