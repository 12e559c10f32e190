package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger emits one structured line per request: route, query params,
// status, latency and client ip.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		log.Infow("request",
			"route", ctx.Request.URL.Path,
			"params", ctx.Request.URL.RawQuery,
			"status", ctx.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", ctx.ClientIP(),
		)
	}
}
