package middleware

import (
	"strconv"
	"time"

	"grocery-genius/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 記錄請求數與耗時；未匹配路由歸為 "unmatched"
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeOf(c)
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
