package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/ingest"
	"github.com/matchlens/pitchtrack/internal/models"
	"github.com/matchlens/pitchtrack/internal/service"
	"github.com/matchlens/pitchtrack/pkg/response"
)

// SessionHandler handles HTTP requests for tracking sessions
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions: a multipart CSV upload
func (h *SessionHandler) Create(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing multipart file field 'file'")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to open uploaded file")
		return
	}
	defer f.Close()

	player := c.PostForm("player")

	session, metrics, err := h.sessionService.CreateFromCSV(f, player, fileHeader.Filename)
	if err != nil {
		var formatErr *ingest.InputFormatError
		var trajErr *analysis.InvalidTrajectoryError
		switch {
		case errors.As(err, &formatErr):
			response.BadRequest(c, formatErr.Error())
		case errors.As(err, &trajErr):
			response.UnprocessableEntity(c, trajErr.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Created(c, gin.H{
		"session": session,
		"metrics": metrics,
	})
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	var filter models.SessionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.sessionService.List(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "session not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, session)
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "session not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"deleted": id})
}

// Samples handles GET /api/v1/sessions/:id/samples
func (h *SessionHandler) Samples(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var filter models.SampleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.sessionService.Samples(id, filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// sessionID parses the :id path parameter, writing a 400 response on failure
func sessionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid session id")
		return 0, false
	}
	return id, true
}
