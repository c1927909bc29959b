package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"grocery-genius/internal/core/ai/provider"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingProvider struct {
	release chan struct{}
	mu      sync.Mutex
	calls   int
	closed  bool
}

func (p *blockingProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.release != nil {
		select {
		case <-p.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &provider.Response{Content: req.Messages[0].Content}, nil
}

func (p *blockingProvider) GetModel() string          { return "blocking" }
func (p *blockingProvider) GetTimeout() time.Duration { return time.Second }
func (p *blockingProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func request(content string) *provider.Request {
	return &provider.Request{Messages: []provider.Message{{Role: provider.RoleUser, Content: content}}}
}

func TestManager_Generate(t *testing.T) {
	up := &blockingProvider{}
	m := NewManager(config.QueueConfig{Workers: 2, MaxSize: 4}, up)
	t.Cleanup(func() { _ = m.Close() })

	resp, err := m.Generate(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)

	assert.Eventually(t, func() bool {
		return m.GetQueueStatus().ProcessedCount == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "blocking", m.GetModel())
	assert.Equal(t, time.Second, m.GetTimeout())
}

func TestManager_QueueFull(t *testing.T) {
	up := &blockingProvider{release: make(chan struct{})}
	m := NewManager(config.QueueConfig{Workers: 1, MaxSize: 1}, up)
	t.Cleanup(func() {
		close(up.release)
		_ = m.Close()
	})

	// 第一個請求佔用 worker
	_, err := m.Enqueue(context.Background(), request("a"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		up.mu.Lock()
		defer up.mu.Unlock()
		return up.calls == 1
	}, time.Second, 5*time.Millisecond)

	// 第二個請求佔滿隊列
	_, err = m.Enqueue(context.Background(), request("b"))
	require.NoError(t, err)

	_, err = m.Enqueue(context.Background(), request("c"))
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)
}

func TestManager_ContextCancelled(t *testing.T) {
	up := &blockingProvider{release: make(chan struct{})}
	m := NewManager(config.QueueConfig{Workers: 1, MaxSize: 2}, up)
	t.Cleanup(func() {
		close(up.release)
		_ = m.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Generate(ctx, request("slow"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestManager_Close(t *testing.T) {
	up := &blockingProvider{}
	m := NewManager(config.QueueConfig{Workers: 1, MaxSize: 1}, up)

	require.NoError(t, m.Close())
	assert.True(t, up.closed)

	_, err := m.Generate(context.Background(), request("late"))
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)
}
