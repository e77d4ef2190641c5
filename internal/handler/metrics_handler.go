package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/matchlens/pitchtrack/internal/service"
	"github.com/matchlens/pitchtrack/pkg/response"
)

// MetricsHandler handles HTTP requests for derived movement metrics
type MetricsHandler struct {
	sessionService *service.SessionService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(sessionService *service.SessionService) *MetricsHandler {
	return &MetricsHandler{sessionService: sessionService}
}

// Get handles GET /api/v1/sessions/:id/metrics
func (h *MetricsHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	metrics, err := h.sessionService.Metrics(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "session not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, metrics)
}
