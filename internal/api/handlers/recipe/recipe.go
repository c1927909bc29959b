package recipe

import (
	"context"
	"net/http"

	"grocery-genius/internal/api/handlers"
	"grocery-genius/internal/core/health"
	recipeService "grocery-genius/internal/core/recipe"
	"grocery-genius/internal/pkg/common"
	"grocery-genius/internal/pkg/metrics"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Generator 食譜生成
type Generator interface {
	Generate(ctx context.Context, req recipeService.GenerateRequest) ([]recipeService.Recipe, error)
}

// GradeRequest 健康等級請求
type GradeRequest struct {
	Nutrition *health.Nutrition `json:"nutrition"`
}

// GradeResponse 健康等級
type GradeResponse struct {
	Grade health.Grade `json:"grade"`
	Color string       `json:"color"`
	Score *int         `json:"score,omitempty"`
}

// Handler 食譜處理程序
type Handler struct {
	generator Generator
}

// NewHandler 創建新的食譜處理程序
func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// HandleGenerate 依食材生成食譜
func (h *Handler) HandleGenerate(c *gin.Context) {
	var req recipeService.GenerateRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestid.Get(c)),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.String("dietary", req.Dietary),
	)

	recipes, err := h.generator.Generate(handlers.RequestContext(c), req)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	for _, r := range recipes {
		if r.HealthGrade != "" {
			metrics.GradesIssued.WithLabelValues(string(r.HealthGrade)).Inc()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// HandleGrade 依營養資訊計算健康等級；未提供營養資訊時為 B
func (h *Handler) HandleGrade(c *gin.Context) {
	var req GradeRequest
	if !handlers.BindJSON(c, &req) {
		return
	}

	grade := health.Score(req.Nutrition)
	resp := GradeResponse{Grade: grade, Color: health.Color(grade)}
	if req.Nutrition != nil {
		points := health.Points(*req.Nutrition)
		resp.Score = &points
	}
	metrics.GradesIssued.WithLabelValues(string(grade)).Inc()

	c.JSON(http.StatusOK, resp)
}
