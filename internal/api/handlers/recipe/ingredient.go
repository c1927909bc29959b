package recipe

import (
	"net/http"
	"strings"

	"grocery-genius/internal/api/handlers"
	"grocery-genius/internal/core/ingredient"
	"grocery-genius/internal/pkg/common"
	"grocery-genius/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ParseRequest 單行食材解析請求
type ParseRequest struct {
	Line string `json:"line"`
}

// ExtractRequest 食材文字擷取請求
type ExtractRequest struct {
	Ingredients string `json:"ingredients"`
}

// HandleParse 解析單行食材；無法解析時回應 422 {"matched": false, "code": "UNPROCESSABLE"}
func HandleParse(c *gin.Context) {
	var req ParseRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	ing, ok := ingredient.ParseLine(req.Line)
	if !ok {
		metrics.ObserveLines(0, 1)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"matched": false, "code": common.ErrCodeUnprocessable})
		return
	}

	metrics.ObserveLines(1, 0)
	c.JSON(http.StatusOK, ing)
}

// HandleExtract 從多行文字擷取食材
func HandleExtract(c *gin.Context) {
	var req ExtractRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	items := ingredient.Extract(req.Ingredients)
	metrics.ObserveLines(len(items), skippedLines(req.Ingredients, len(items)))

	c.JSON(http.StatusOK, gin.H{
		"ingredients": items,
		"count":       len(items),
	})
}

// skippedLines 非空白行數扣除已擷取數量（截斷的行也計入）
func skippedLines(text string, parsed int) int {
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	if lines < parsed {
		return 0
	}
	return lines - parsed
}
