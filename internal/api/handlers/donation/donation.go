package donation

import (
	"context"
	"net/http"
	"time"

	"grocery-genius/internal/api/handlers"
	"grocery-genius/internal/core/donation"
	"grocery-genius/internal/core/pantry"
	"grocery-genius/internal/pkg/common"
	"grocery-genius/internal/pkg/metrics"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImpactCalculator 遠端捐贈影響力服務
type ImpactCalculator interface {
	CalculateImpact(ctx context.Context, items []donation.Item) (*donation.ImpactResponse, error)
}

// EstimateRequest 捐贈估算請求
type EstimateRequest struct {
	Items []donation.Item `json:"items"`
}

// EstimateResponse 捐贈估算結果
type EstimateResponse struct {
	Items  []donation.ItemImpact `json:"items"`
	Totals donation.Totals       `json:"totals"`
	Source string                `json:"source"`
}

// SuggestRequest 依庫存建議捐贈
type SuggestRequest struct {
	Pantry []pantry.Item `json:"pantry"`
}

// Suggestion 即將過期、建議捐贈的品項
type Suggestion struct {
	Item     pantry.Item         `json:"item"`
	DaysLeft int                 `json:"days_left"`
	Impact   donation.ItemImpact `json:"impact"`
}

// Handler 捐贈處理程序
type Handler struct {
	estimator *donation.Estimator
	impact    ImpactCalculator
	now       func() time.Time
}

// NewHandler 建立捐贈處理程序；impact 為 nil 時只使用本地估算
func NewHandler(estimator *donation.Estimator, impact ImpactCalculator) *Handler {
	return &Handler{
		estimator: estimator,
		impact:    impact,
		now:       time.Now,
	}
}

// HandleEstimate 估算捐贈影響；遠端服務失敗時退回本地估算
func (h *Handler) HandleEstimate(c *gin.Context) {
	var req EstimateRequest
	if !handlers.BindJSON(c, &req) {
		return
	}
	if len(req.Items) == 0 {
		handlers.RespondError(c, common.NewValidationError("items are required"))
		return
	}

	local := h.estimator.EstimateItems(req.Items)
	resp := EstimateResponse{Items: local, Source: donation.SourceLocal}

	if h.impact != nil {
		remote, err := h.impact.CalculateImpact(handlers.RequestContext(c), req.Items)
		if err != nil {
			common.LogWarn("捐贈影響力服務失敗，改用本地估算",
				zap.Error(common.Wrap(common.ErrImpactServiceError, err)),
				zap.String("request_id", requestid.Get(c)),
			)
		} else {
			resp.Items = donation.MergeBreakdown(local, remote.ItemsBreakdown)
			resp.Source = donation.SourceRemote
		}
	}

	resp.Totals = donation.Sum(resp.Items)
	metrics.DonationEstimates.WithLabelValues(resp.Source).Inc()

	c.JSON(http.StatusOK, resp)
}

// HandleSuggest 列出 3 天內到期的庫存品項及其捐贈影響
func (h *Handler) HandleSuggest(c *gin.Context) {
	var req SuggestRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	now := h.now()
	expiring := pantry.ExpiringSoon(req.Pantry, now)

	items := make([]donation.Item, 0, len(expiring))
	for _, it := range expiring {
		items = append(items, donation.Item{Name: it.Name, Quantity: it.Quantity, Unit: it.Unit})
	}
	impacts := h.estimator.EstimateItems(items)

	suggestions := make([]Suggestion, 0, len(expiring))
	for i, it := range expiring {
		expiry, _ := pantry.ParseExpiry(it.ExpiryDate)
		suggestions = append(suggestions, Suggestion{
			Item:     it,
			DaysLeft: pantry.DaysUntil(expiry, now),
			Impact:   impacts[i],
		})
	}
	if len(suggestions) > 0 {
		metrics.DonationEstimates.WithLabelValues(donation.SourceLocal).Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"totals":      donation.Sum(impacts),
	})
}

// HandleFoodBanks 食物銀行清單
func (h *Handler) HandleFoodBanks(c *gin.Context) {
	banks := donation.FoodBanks()
	c.JSON(http.StatusOK, gin.H{
		"food_banks": banks,
		"count":      len(banks),
	})
}

// HandleFoodBank 單一食物銀行
func (h *Handler) HandleFoodBank(c *gin.Context) {
	bank, ok := donation.FoodBankByID(c.Param("id"))
	if !ok {
		handlers.RespondError(c, common.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, bank)
}
