package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"grocery-genius/internal/core/ai/provider"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL OpenRouter API 位址
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterService OpenRouter 服務
type OpenRouterService struct {
	config config.OpenRouterConfig
	client *resty.Client
}

// chatRequest chat completion 請求
type chatRequest struct {
	Model       string             `json:"model"`
	Messages    []provider.Message `json:"messages"`
	MaxTokens   int                `json:"max_tokens,omitempty"`
	Temperature float64            `json:"temperature,omitempty"`
	Stop        []string           `json:"stop,omitempty"`
}

// chatResponse chat completion 回應
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage provider.Usage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

var _ provider.Provider = (*OpenRouterService)(nil)

// NewOpenRouterService 創建 OpenRouter 服務
func NewOpenRouterService(cfg config.OpenRouterConfig) *OpenRouterService {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetHeader("HTTP-Referer", "https://grocery-genius.app").
		SetHeader("X-Title", "Grocery Genius")

	return &OpenRouterService{
		config: cfg,
		client: client,
	}
}

// Generate 呼叫 chat completion 並回傳第一個選項的內容
func (s *OpenRouterService) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 || (s.config.MaxTokens > 0 && maxTokens > s.config.MaxTokens) {
		maxTokens = s.config.MaxTokens
	}

	body := chatRequest{
		Model:       s.config.Model,
		Messages:    req.Messages,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
		Stop:        req.Stop,
	}

	common.LogDebug("Sending request to OpenRouter",
		zap.String("model", body.Model),
		zap.Int("messages", len(body.Messages)),
		zap.Int("max_tokens", body.MaxTokens),
	)

	// 發送請求
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode(), truncateBody(resp.String()))
	}

	// 解析回應
	var result chatResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("OpenRouter API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	model := result.Model
	if model == "" {
		model = s.config.Model
	}

	return &provider.Response{
		Content: result.Choices[0].Message.Content,
		Model:   model,
		Usage:   result.Usage,
	}, nil
}

// GetModel 模型名稱
func (s *OpenRouterService) GetModel() string {
	return s.config.Model
}

// GetTimeout 請求超時時間
func (s *OpenRouterService) GetTimeout() time.Duration {
	return s.config.Timeout
}

// Close 釋放閒置連線
func (s *OpenRouterService) Close() error {
	s.client.GetClient().CloseIdleConnections()
	return nil
}

func truncateBody(s string) string {
	const limit = 200
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
