package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"grocery-genius/internal/core/ai/cache"
	"grocery-genius/internal/core/ai/provider"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"
	"grocery-genius/internal/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Response AI 回應
type Response struct {
	Content  string
	CacheHit bool
}

// Service AI 服務：統一快取、請求頻率限制與逾時
type Service struct {
	provider provider.Provider
	store    cache.Store
	limiter  *rate.Limiter
}

type requestIDKey struct{}

// WithRequestID 將請求 ID 放入 context，供日誌使用
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// NewService 創建 AI 服務；store 為 nil 時不使用快取
func NewService(cfg *config.Config, p provider.Provider, store cache.Store) *Service {
	s := &Service{
		provider: p,
		store:    store,
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.Requests > 0 && cfg.RateLimit.Window > 0 {
		every := cfg.RateLimit.Window / time.Duration(cfg.RateLimit.Requests)
		s.limiter = rate.NewLimiter(rate.Every(every), cfg.RateLimit.Requests)
	}
	return s
}

// ProcessRequest 統一對外方法
func (s *Service) ProcessRequest(ctx context.Context, req *provider.Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, common.NewValidationError("request has no messages")
	}
	if s.limiter != nil && !s.limiter.Allow() {
		return nil, common.ErrTooManyRequests
	}

	key := CacheKey(req)
	if s.store != nil {
		val, err := s.store.Get(ctx, key)
		switch {
		case err == nil && val != "":
			metrics.AICacheLookups.WithLabelValues("hit").Inc()
			common.LogCacheHit(s.store.Stats().Backend, key)
			return &Response{Content: val, CacheHit: true}, nil
		case err != nil && !errors.Is(err, common.ErrCacheMiss):
			metrics.AICacheLookups.WithLabelValues("error").Inc()
			common.LogWarn("快取讀取失敗", zap.Error(err))
		default:
			metrics.AICacheLookups.WithLabelValues("miss").Inc()
			common.LogCacheMiss(s.store.Stats().Backend, key)
		}
	}

	if timeout := s.provider.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, req)
	common.LogAICall(s.provider.GetModel(), time.Since(start), err, requestIDFrom(ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, common.Wrap(common.ErrGatewayTimeout, err)
		}
		return nil, common.Wrap(common.ErrAIServiceError, err)
	}

	if s.store != nil && strings.TrimSpace(resp.Content) != "" {
		if err := s.store.Set(ctx, key, resp.Content); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err))
		}
	}

	return &Response{Content: resp.Content}, nil
}

// CacheKey 依正規化後的訊息與生成參數計算快取鍵；空白差異不影響鍵值
func CacheKey(req *provider.Request) string {
	h := sha256.New()
	for _, msg := range req.Messages {
		fmt.Fprintf(h, "%s\x00%s\x00", msg.Role, strings.Join(strings.Fields(msg.Content), " "))
	}
	fmt.Fprintf(h, "%d\x00%.2f", req.MaxTokens, req.Temperature)
	return "text:" + hex.EncodeToString(h.Sum(nil))
}
