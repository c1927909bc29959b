package donation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"grocery-genius/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// ImpactRequest 遠端影響服務請求
type ImpactRequest struct {
	Items []Item `json:"items"`
}

// ImpactResponse 遠端影響服務回應
type ImpactResponse struct {
	TotalMeals     float64         `json:"total_meals"`
	TotalPounds    float64         `json:"total_pounds"`
	CO2SavedLbs    float64         `json:"co2_saved_lbs"`
	ItemsBreakdown []BreakdownItem `json:"items_breakdown"`
}

// ImpactClient 遠端捐贈影響服務客戶端
type ImpactClient struct {
	client *resty.Client
}

// NewImpactClient 創建遠端影響服務客戶端
func NewImpactClient(baseURL string, timeout time.Duration) *ImpactClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &ImpactClient{client: client}
}

// CalculateImpact 呼叫遠端服務計算捐贈影響
func (c *ImpactClient) CalculateImpact(ctx context.Context, items []Item) (*ImpactResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(ImpactRequest{Items: items}).
		Post("/donation/calculate-impact")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to impact service: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("impact service returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result ImpactResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse impact response: %w", err)
	}

	return &result, nil
}
