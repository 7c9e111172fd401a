package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/codeacademypro/contactapi/internal/api/constants"
	"github.com/codeacademypro/contactapi/internal/logging"
	"github.com/codeacademypro/contactapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the generic 500 response
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString(constants.ContextKeyRequestID),
					rec,
					debug.Stack(),
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				utils.HandleInternalError(c, fmt.Errorf("panic: %v", rec))
				c.Abort()
			}
		}()

		c.Next()
	}
}
