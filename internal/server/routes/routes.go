package routes

import (
	"net/http"

	"github.com/codeacademypro/contactapi/internal/api/dto/common"
	"github.com/codeacademypro/contactapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers) {
	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	SetupContactRoutes(api, h.Contact)

	router.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, common.NotFoundResponse{
		Error: utils.MsgRouteNotFound,
		Path:  c.Request.URL.Path,
	})
}
