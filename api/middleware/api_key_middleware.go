package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "x-api-key"

// APIKey guards write endpoints with a fixed shared secret. Mismatch or
// absence aborts the request before any handler runs.
func APIKey(key string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		provided := ctx.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{
				Message: "invalid or missing API key",
			})
			return
		}
		ctx.Next()
	}
}
