package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"grocery-genius/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deduplicator 在時間窗內拒絕相同路徑與內容的重複 POST 請求
type Deduplicator struct {
	window   time.Duration
	mu       sync.Mutex
	requests map[string]time.Time
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewDeduplicator 建立去重器並啟動背景清理；window 小於等於 0 時使用 1 秒
func NewDeduplicator(window time.Duration) *Deduplicator {
	if window <= 0 {
		window = time.Second
	}
	d := &Deduplicator{
		window:   window,
		requests: make(map[string]time.Time),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go d.cleanupLoop(10 * time.Minute)
	return d
}

func (d *Deduplicator) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			d.cleanup()
		case <-d.done:
			return
		}
	}
}

func (d *Deduplicator) cleanup() {
	now := d.now()
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, t := range d.requests {
		if now.Sub(t) > 10*d.window {
			delete(d.requests, k)
		}
	}
}

// seen 記錄指紋；時間窗內已出現過時回傳 true
func (d *Deduplicator) seen(fingerprint string) bool {
	now := d.now()
	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.requests[fingerprint]; ok && now.Sub(last) <= d.window {
		return true
	}
	d.requests[fingerprint] = now
	return false
}

// Stop 停止背景清理
func (d *Deduplicator) Stop() {
	d.stopOnce.Do(func() { close(d.done) })
}

// Middleware 請求去重中間件
func (d *Deduplicator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogWarn("Failed to read request body", zap.Error(err))
				status, resp := common.ResolveError(common.ErrRequestTooLarge)
				c.AbortWithStatusJSON(status, resp)
				return
			}
			hash := sha256.Sum256(body)
			fingerprint += ":" + c.ClientIP() + ":" + hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		if d.seen(fingerprint) {
			common.LogDebug("重複請求已攔截", zap.String("route", routeOf(c)))
			status, resp := common.ResolveError(common.ErrDuplicateRequest)
			c.AbortWithStatusJSON(status, resp)
			return
		}

		c.Next()
	}
}
