package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"grocery-genius/internal/core/ai/cache"
	"grocery-genius/internal/core/ai/provider"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu       sync.Mutex
	calls    int
	content  string
	err      error
	timeout  time.Duration
	requests []*provider.Request
}

func (f *fakeProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &provider.Response{Content: f.content}, nil
}

func (f *fakeProvider) GetModel() string          { return "fake" }
func (f *fakeProvider) GetTimeout() time.Duration { return f.timeout }
func (f *fakeProvider) Close() error              { return nil }

func userRequest(content string) *provider.Request {
	return &provider.Request{Messages: []provider.Message{{Role: provider.RoleUser, Content: content}}}
}

func newMemoryStore(t *testing.T) cache.Store {
	t.Helper()
	store := cache.NewManager(config.CacheConfig{Enabled: true, MaxSize: 10, TTL: time.Hour})
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestProcessRequest_CachesResponses(t *testing.T) {
	p := &fakeProvider{content: "recipes"}
	svc := NewService(&config.Config{}, p, newMemoryStore(t))
	ctx := context.Background()

	first, err := svc.ProcessRequest(ctx, userRequest("rice,  beans\n"))
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := svc.ProcessRequest(ctx, userRequest("rice, beans"))
	require.NoError(t, err)
	assert.True(t, second.CacheHit, "whitespace differences share a cache key")
	assert.Equal(t, "recipes", second.Content)
	assert.Equal(t, 1, p.calls)

	assert.Equal(t, "rice,  beans\n", p.requests[0].Messages[0].Content, "provider receives the unmodified prompt")
}

func TestProcessRequest_NoStore(t *testing.T) {
	p := &fakeProvider{content: "ok"}
	svc := NewService(&config.Config{}, p, nil)

	for i := 0; i < 2; i++ {
		resp, err := svc.ProcessRequest(context.Background(), userRequest("x"))
		require.NoError(t, err)
		assert.False(t, resp.CacheHit)
	}
	assert.Equal(t, 2, p.calls)
}

func TestProcessRequest_ProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("upstream down")}
	svc := NewService(&config.Config{}, p, newMemoryStore(t))

	_, err := svc.ProcessRequest(context.Background(), userRequest("x"))
	assert.ErrorIs(t, err, common.ErrAIServiceError)
	assert.ErrorContains(t, err, "upstream down")
}

func TestProcessRequest_Timeout(t *testing.T) {
	p := &fakeProvider{err: context.DeadlineExceeded, timeout: time.Second}
	svc := NewService(&config.Config{}, p, nil)

	_, err := svc.ProcessRequest(context.Background(), userRequest("x"))
	assert.ErrorIs(t, err, common.ErrGatewayTimeout)
}

func TestProcessRequest_RateLimited(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: true, Requests: 2, Window: time.Hour}}
	svc := NewService(cfg, &fakeProvider{content: "ok"}, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.ProcessRequest(ctx, userRequest("x"))
		require.NoError(t, err)
	}
	_, err := svc.ProcessRequest(ctx, userRequest("x"))
	assert.ErrorIs(t, err, common.ErrTooManyRequests)
}

func TestProcessRequest_EmptyRequest(t *testing.T) {
	svc := NewService(&config.Config{}, &fakeProvider{}, nil)
	_, err := svc.ProcessRequest(context.Background(), &provider.Request{})
	assert.True(t, common.IsValidationError(err))
}

func TestCacheKey(t *testing.T) {
	a := CacheKey(userRequest("2 cups rice"))
	b := CacheKey(userRequest("  2 cups   rice "))
	c := CacheKey(&provider.Request{Messages: []provider.Message{{Role: provider.RoleSystem, Content: "2 cups rice"}}})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "role is part of the key")
	assert.Contains(t, a, "text:")
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", requestIDFrom(ctx))
	assert.Empty(t, requestIDFrom(context.Background()))
}
