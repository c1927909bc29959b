package middleware

import (
	"net/http"
	"time"

	"grocery-genius/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 探針與指標路徑只記錄在 debug 級別
var probePaths = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/live":    true,
	"/metrics": true,
}

// Logger 請求日誌中間件；需在 requestid 之後註冊
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestid.Get(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", routeOf(c)),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			common.LogError("伺服器錯誤", fields...)
		case status >= http.StatusBadRequest:
			common.LogWarn("用戶端錯誤", fields...)
		case probePaths[path]:
			common.LogDebug("請求完成", fields...)
		default:
			common.LogInfo("請求完成", fields...)
		}
	}
}

// Recovery 攔截 panic 並回應 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				common.LogError("Panic recovered",
					zap.Any("panic", rec),
					zap.String("route", routeOf(c)),
					zap.String("request_id", requestid.Get(c)),
					zap.Stack("stack"),
				)
				status, body := common.ResolveError(common.ErrInternalError)
				c.AbortWithStatusJSON(status, body)
			}
		}()

		c.Next()
	}
}

// routeOf 已匹配的路由樣板；未匹配時為 "unmatched"
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
