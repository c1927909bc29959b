package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "grocery_genius"

var (
	// HTTPRequests HTTP 請求數
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration HTTP 請求耗時
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// IngredientLines 食材行解析結果
	IngredientLines = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingredient_lines_total",
		Help:      "Ingredient lines by outcome (parsed, skipped).",
	}, []string{"outcome"})

	// GradesIssued 健康等級
	GradesIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_grades_total",
		Help:      "Health grades issued by grade.",
	}, []string{"grade"})

	// DonationEstimates 捐贈估算次數
	DonationEstimates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donation_estimates_total",
		Help:      "Donation impact estimates by source (local, remote).",
	}, []string{"source"})

	// AICacheLookups AI 快取查詢
	AICacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_cache_lookups_total",
		Help:      "AI response cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)

// 解析結果標籤
const (
	OutcomeParsed  = "parsed"
	OutcomeSkipped = "skipped"
)

// ObserveLines 記錄解析成功與略過的行數
func ObserveLines(parsed, skipped int) {
	if parsed > 0 {
		IngredientLines.WithLabelValues(OutcomeParsed).Add(float64(parsed))
	}
	if skipped > 0 {
		IngredientLines.WithLabelValues(OutcomeSkipped).Add(float64(skipped))
	}
}
