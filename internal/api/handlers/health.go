package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/codeacademypro/contactapi/internal/api/dto/common"
	"github.com/codeacademypro/contactapi/internal/utils"

	"github.com/gin-gonic/gin"
)

const statusMessage = "API CodeAcademy Pro funcionando correctamente"

// Pinger checks that a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	now   func() time.Time
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store, now: time.Now}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	utils.HandleSuccess(c, common.StatusResponse{
		Message:   statusMessage,
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, common.HealthResponse{
			Status:  "unhealthy",
			Message: "Database connection error",
		})
		return
	}

	utils.HandleSuccess(c, common.HealthResponse{Status: "ok"})
}
