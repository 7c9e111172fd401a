package routes

import (
	"github.com/codeacademypro/contactapi/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	router.POST("/contacto", contact.Submit)
	router.GET("/contactos", contact.List)
	router.GET("/contacto/:id", contact.Get)
}
