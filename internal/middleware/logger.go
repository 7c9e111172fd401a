package middleware

import (
	"time"

	"github.com/codeacademypro/contactapi/internal/api/constants"
	"github.com/codeacademypro/contactapi/internal/logging"
	"github.com/codeacademypro/contactapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every finished request when request logging is enabled
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	if !logger.RequestsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}
