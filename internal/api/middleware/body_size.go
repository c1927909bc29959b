package middleware

import (
	"fmt"
	"net/http"

	"grocery-genius/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BodySizeLimit 拒絕宣告長度超過 maxSize 的請求，並以 MaxBytesReader 截斷未宣告長度的請求體。
// maxSize 小於等於 0 時不限制。
func BodySizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxSize <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxSize {
			common.LogWarn("Request body too large",
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("max_size", maxSize),
				zap.String("route", routeOf(c)),
			)
			status, body := common.ResolveError(common.ErrRequestTooLarge)
			body.Details = fmt.Sprintf("max %d bytes", maxSize)
			c.AbortWithStatusJSON(status, body)
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		}
		c.Next()
	}
}
