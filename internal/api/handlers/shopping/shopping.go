package shopping

import (
	"net/http"

	"grocery-genius/internal/api/handlers"
	"grocery-genius/internal/core/ingredient"
	"grocery-genius/internal/core/shopping"
	"grocery-genius/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MissingRequest 食譜缺少食材請求
type MissingRequest struct {
	Ingredients  string          `json:"ingredients"`
	Pantry       []shopping.Item `json:"pantry"`
	ShoppingList []shopping.Item `json:"shopping_list"`
}

// WeekRequest 週計畫彙總請求
type WeekRequest struct {
	Recipes []string `json:"recipes"`
}

// Handler 購物清單處理程序
type Handler struct {
	differ     *shopping.Differ
	aggregator *shopping.Aggregator
}

// NewHandler 建立購物清單處理程序
func NewHandler(differ *shopping.Differ, aggregator *shopping.Aggregator) *Handler {
	return &Handler{differ: differ, aggregator: aggregator}
}

// HandleMissing 擷取食譜食材並扣除庫存與購物清單已有的項目
func (h *Handler) HandleMissing(c *gin.Context) {
	var req MissingRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	parsed := ingredient.Extract(req.Ingredients)
	metrics.ObserveLines(len(parsed), 0)
	missing := h.differ.ComputeMissing(parsed, req.Pantry, req.ShoppingList)

	c.JSON(http.StatusOK, gin.H{
		"missing": missing,
		"entries": shopping.ToListEntries(missing),
		"count":   len(missing),
	})
}

// HandleWeek 彙總多份食譜的食材
func (h *Handler) HandleWeek(c *gin.Context) {
	var req WeekRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	items := h.aggregator.Aggregate(req.Recipes)

	c.JSON(http.StatusOK, gin.H{
		"items":   items,
		"recipes": len(req.Recipes),
	})
}
