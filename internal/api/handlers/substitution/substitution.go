package substitution

import (
	"net/http"
	"strings"

	"grocery-genius/internal/api/handlers"
	"grocery-genius/internal/core/substitution"
	"grocery-genius/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Request 替代食材查詢請求
type Request struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Dietary    string  `json:"dietary,omitempty"`
}

// Entry 替代食材與換算後數量
type Entry struct {
	substitution.Substitution
	NewQuantity float64 `json:"new_quantity"`
	Unit        string  `json:"unit"`
}

// Handler 替代食材處理程序
type Handler struct {
	matcher *substitution.Matcher
}

// NewHandler 建立替代食材處理程序
func NewHandler(matcher *substitution.Matcher) *Handler {
	return &Handler{matcher: matcher}
}

// HandleFind 查詢替代食材並換算數量
func (h *Handler) HandleFind(c *gin.Context) {
	var req Request
	if !handlers.BindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Ingredient) == "" {
		handlers.RespondError(c, common.NewValidationError("ingredient is required"))
		return
	}
	if req.Dietary == "" {
		req.Dietary = substitution.FilterAll
	}

	found := h.matcher.Find(req.Ingredient, req.Dietary)
	entries := make([]Entry, 0, len(found))
	for _, sub := range found {
		entries = append(entries, Entry{
			Substitution: sub,
			NewQuantity:  substitution.ScaleQuantity(req.Quantity, sub.ConversionRatio),
			Unit:         req.Unit,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredient":    req.Ingredient,
		"substitutions": entries,
		"count":         len(entries),
	})
}
