package handlers

import (
	"context"

	"grocery-genius/internal/core/ai/service"
	"grocery-genius/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondError 以 {"error", "code"} 格式回應錯誤
func RespondError(c *gin.Context, err error) {
	status, body := common.ResolveError(err)
	_ = c.Error(err)
	if status >= 500 {
		common.LogError("請求處理失敗",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestid.Get(c)),
		)
	}
	c.AbortWithStatusJSON(status, body)
}

// BindJSON 解析 JSON 請求；失敗時已回應 400
func BindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		common.LogDebug("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestid.Get(c)),
		)
		RespondError(c, common.NewValidationError("Invalid request format"))
		return false
	}
	return true
}

// RequestContext 帶有請求 ID 的 context
func RequestContext(c *gin.Context) context.Context {
	return service.WithRequestID(c.Request.Context(), requestid.Get(c))
}
