package handlers

import (
	"net/http"

	"frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Backend string
	Store   utils.Pinger
}

func NewHealthHandler(backend string, store utils.Pinger) *HealthHandler {
	return &HealthHandler{Backend: backend, Store: store}
}

// Health handles GET /health and reports 503 when the store does not answer.
// The previous snapshot, usually from the background probe, is included when
// one exists.
func (h *HealthHandler) Health(c *gin.Context) {
	previous := utils.GetHealthStatus()
	status := utils.CheckHealth(c.Request.Context(), h.Backend, h.Store)

	body := gin.H{"status": "ok", "health": status}
	if !previous.CheckedAt.IsZero() {
		body["previous"] = previous
	}
	if !status.Store {
		body["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
