package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matchlens/pitchtrack/internal/service"
	"github.com/matchlens/pitchtrack/pkg/response"
)

// VisualizationHandler serves heatmap and vector map artifacts
type VisualizationHandler struct {
	vizService *service.VisualizationService
}

// NewVisualizationHandler creates a new visualization handler
func NewVisualizationHandler(vizService *service.VisualizationService) *VisualizationHandler {
	return &VisualizationHandler{vizService: vizService}
}

// Heatmap handles GET /api/v1/sessions/:id/heatmap
func (h *VisualizationHandler) Heatmap(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	data, err := h.vizService.HeatmapData(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, data)
}

// HeatmapPNG handles GET /api/v1/sessions/:id/heatmap.png
func (h *VisualizationHandler) HeatmapPNG(c *gin.Context) {
	h.servePNG(c, h.vizService.HeatmapPNG)
}

// VectorMapPNG handles GET /api/v1/sessions/:id/vectormap.png
func (h *VisualizationHandler) VectorMapPNG(c *gin.Context) {
	h.servePNG(c, h.vizService.VectorMapPNG)
}

// SpeedChartPNG handles GET /api/v1/sessions/:id/speedchart.png
func (h *VisualizationHandler) SpeedChartPNG(c *gin.Context) {
	h.servePNG(c, h.vizService.SpeedChartPNG)
}

// servePNG renders into a buffer first so failures still produce a JSON
// error instead of a truncated image
func (h *VisualizationHandler) servePNG(c *gin.Context, renderFn func(int64, io.Writer) error) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := renderFn(id, &buf); err != nil {
		response.InternalError(c, err.Error())
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
