package routes

import (
	"github.com/codeacademypro/contactapi/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures the root banner and health check endpoints
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler) {
	router.GET("/", health.Root)
	router.GET("/health", health.Check)
}
