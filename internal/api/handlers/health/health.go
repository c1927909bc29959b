package health

import (
	"net/http"
	"runtime"
	"time"

	"grocery-genius/internal/core/ai/cache"
	"grocery-genius/internal/core/ai/queue"
	"grocery-genius/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Service   string                 `json:"service"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     *cache.Stats           `json:"cache,omitempty"`
	Queue     *queue.Status          `json:"queue,omitempty"`
}

// QueueStatusProvider 提供 AI 請求隊列狀態
type QueueStatusProvider interface {
	GetQueueStatus() *queue.Status
}

// Handler 健康檢查處理器
type Handler struct {
	cfg   *config.Config
	store cache.Store
	queue QueueStatusProvider
}

// NewHandler 建立健康檢查處理器；store 與 queue 可為 nil
func NewHandler(cfg *config.Config, store cache.Store, q QueueStatusProvider) *Handler {
	return &Handler{cfg: cfg, store: store, queue: q}
}

// HealthCheck 健康檢查
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Service:   h.cfg.App.Name,
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}
	if h.store != nil {
		stats := h.store.Stats()
		response.Cache = &stats
	}
	if h.queue != nil {
		response.Queue = h.queue.GetQueueStatus()
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查；AI 隊列已滿時回報未就緒
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.queue != nil {
		if st := h.queue.GetQueueStatus(); st.QueueLength >= st.MaxQueueSize {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "busy",
				"queue":  st,
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
