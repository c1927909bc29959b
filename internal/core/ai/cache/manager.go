package cache

import (
	"context"
	"sync"
	"time"

	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"go.uber.org/zap"
)

// CacheManager 記憶體快取，過期淘汰並在容量滿時淘汰最少使用的項目
type CacheManager struct {
	config config.CacheConfig
	mu     sync.Mutex
	store  map[string]cacheEntry
	stats  cacheStats
	now    func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

type cacheEntry struct {
	value       string
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

var _ Store = (*CacheManager)(nil)

// NewManager 創建新的緩存管理器
func NewManager(cfg config.CacheConfig) *CacheManager {
	m := &CacheManager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		now:    time.Now,
		done:   make(chan struct{}),
	}

	if cfg.CleanupInterval > 0 {
		go m.cleanupLoop()
	}

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.MaxSize),
		zap.Duration("存活時間", cfg.TTL),
		zap.Duration("清理間隔", cfg.CleanupInterval),
	)

	return m
}

// Get 獲取緩存值
func (m *CacheManager) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		return "", common.ErrCacheMiss
	}

	now := m.now()
	if now.After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = now
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++

	return entry.value, nil
}

// Set 寫入快取；容量已滿時先移除過期項目，再淘汰最少使用的項目
func (m *CacheManager) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.store[key]; !exists && !m.makeRoom() {
		m.stats.errors++
		common.LogWarn("快取已滿", zap.Int("目前容量", len(m.store)))
		return common.ErrCacheFull
	}

	now := m.now()
	m.store[key] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.config.TTL),
		lastAccess: now,
	}
	return nil
}

// makeRoom 確保還有一個空位；呼叫端需持有鎖
func (m *CacheManager) makeRoom() bool {
	if len(m.store) < m.config.MaxSize {
		return true
	}
	if m.removeExpired() == 0 && len(m.store) > 0 {
		m.evictLeastUsed()
	}
	return len(m.store) < m.config.MaxSize
}

func (m *CacheManager) cleanupLoop() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			if n := m.removeExpired(); n > 0 {
				common.LogDebug("快取清理執行", zap.Int("清理數量", n), zap.Int("剩餘", len(m.store)))
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

// removeExpired 移除過期項目並回傳數量；呼叫端需持有鎖
func (m *CacheManager) removeExpired() int {
	now := m.now()
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
		}
	}
	m.stats.evictions += int64(count)
	return count
}

// evictLeastUsed 淘汰訪問次數最少的項目，同次數時淘汰最久未訪問者；呼叫端需持有鎖
func (m *CacheManager) evictLeastUsed() {
	var (
		victim string
		oldest cacheEntry
		found  bool
	)
	for key, entry := range m.store {
		if !found ||
			entry.accessCount < oldest.accessCount ||
			(entry.accessCount == oldest.accessCount && entry.lastAccess.Before(oldest.lastAccess)) {
			victim, oldest, found = key, entry, true
		}
	}
	if found {
		delete(m.store, victim)
		m.stats.evictions++
	}
}

// Stats 獲取緩存統計信息
func (m *CacheManager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		Backend:   config.CacheBackendMemory,
		Size:      len(m.store),
		MaxSize:   m.config.MaxSize,
		Hits:      m.stats.hits,
		Misses:    m.stats.misses,
		Evictions: m.stats.evictions,
		Errors:    m.stats.errors,
		HitRatio:  hitRatio(m.stats.hits, m.stats.misses),
	}
}

// Close 關閉緩存管理器
func (m *CacheManager) Close() error {
	m.closeOnce.Do(func() { close(m.done) })

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}
