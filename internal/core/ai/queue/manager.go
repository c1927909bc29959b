package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"grocery-genius/internal/core/ai/provider"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"go.uber.org/zap"
)

// Request 隊列請求
type Request struct {
	Context context.Context
	Request *provider.Request
	Result  chan Result
}

// Result 處理結果
type Result struct {
	Response *provider.Response
	Error    error
}

// Status 隊列狀態
type Status struct {
	QueueLength    int   `json:"queue_length"`
	ProcessedCount int64 `json:"processed_count"`
	MaxQueueSize   int   `json:"max_queue_size"`
	Workers        int   `json:"workers"`
}

// Manager 以固定數量的 worker 呼叫上游 AI 提供者，隊列滿時立即拒絕
type Manager struct {
	upstream provider.Provider
	config   config.QueueConfig
	queue    chan *Request
	done     chan struct{}
	wg       sync.WaitGroup

	processed atomic.Int64
	closeOnce sync.Once
}

var _ provider.Provider = (*Manager)(nil)

// NewManager 創建新的隊列管理器並啟動 worker
func NewManager(cfg config.QueueConfig, upstream provider.Provider) *Manager {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = cfg.Workers
	}

	m := &Manager{
		upstream: upstream,
		config:   cfg,
		queue:    make(chan *Request, cfg.MaxSize),
		done:     make(chan struct{}),
	}

	for i := 0; i < cfg.Workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}

	return m
}

func (m *Manager) worker() {
	defer m.wg.Done()
	for {
		select {
		case req := <-m.queue:
			m.handle(req)
		case <-m.done:
			return
		}
	}
}

func (m *Manager) handle(req *Request) {
	defer m.processed.Add(1)

	// 呼叫端已放棄的請求不送往上游
	if err := req.Context.Err(); err != nil {
		req.Result <- Result{Error: err}
		return
	}

	resp, err := m.upstream.Generate(req.Context, req.Request)
	req.Result <- Result{Response: resp, Error: err}
}

// Enqueue 將請求加入隊列
func (m *Manager) Enqueue(ctx context.Context, req *provider.Request) (chan Result, error) {
	queueReq := &Request{
		Context: ctx,
		Request: req,
		Result:  make(chan Result, 1),
	}

	select {
	case <-m.done:
		return nil, common.ErrServiceUnavailable
	default:
	}

	select {
	case m.queue <- queueReq:
		common.LogDebug("Request enqueued",
			zap.Int("queue_length", len(m.queue)),
			zap.Int("max_queue_size", m.config.MaxSize),
		)
		return queueReq.Result, nil
	default:
		common.LogWarn("AI 請求隊列已滿", zap.Int("max_queue_size", m.config.MaxSize))
		return nil, common.ErrServiceUnavailable
	}
}

// Generate 排入隊列並等待結果
func (m *Manager) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	result, err := m.Enqueue(ctx, req)
	if err != nil {
		return nil, err
	}

	select {
	case r := <-result:
		return r.Response, r.Error
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.done:
		return nil, common.ErrServiceUnavailable
	}
}

// GetModel 上游模型名稱
func (m *Manager) GetModel() string {
	return m.upstream.GetModel()
}

// GetTimeout 上游超時時間
func (m *Manager) GetTimeout() time.Duration {
	return m.upstream.GetTimeout()
}

// GetQueueStatus 獲取隊列狀態
func (m *Manager) GetQueueStatus() *Status {
	return &Status{
		QueueLength:    len(m.queue),
		ProcessedCount: m.processed.Load(),
		MaxQueueSize:   m.config.MaxSize,
		Workers:        m.config.Workers,
	}
}

// Close 停止 worker 並關閉上游
func (m *Manager) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	m.wg.Wait()
	return m.upstream.Close()
}
