package middleware

import (
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger puts a request-scoped logger (already tagged with the request
// id) into the context so services and repos can log without knowing gin.
// Must run after RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
		)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
