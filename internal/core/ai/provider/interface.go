package provider

import (
	"context"
	"time"
)

// 對話角色
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message 對話訊息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request chat completion 請求
type Request struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	Stop        []string  `json:"stop,omitempty"`
}

// NewRequest 以系統提示與使用者提示組成請求；system 為空時省略
func NewRequest(system, user string, maxTokens int, temperature float64) *Request {
	req := &Request{MaxTokens: maxTokens, Temperature: temperature}
	if system != "" {
		req.Messages = append(req.Messages, Message{Role: RoleSystem, Content: system})
	}
	req.Messages = append(req.Messages, Message{Role: RoleUser, Content: user})
	return req
}

// Usage token 用量
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response 模型回應
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model,omitempty"`
	Usage   Usage  `json:"usage"`
}

// Provider 文字生成後端；OpenRouter 客戶端與請求隊列皆實作此介面
type Provider interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
	GetModel() string
	GetTimeout() time.Duration
	Close() error
}
