package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/matchlens/pitchtrack/internal/middleware"
	"github.com/matchlens/pitchtrack/pkg/response"
)

// AuthHandler issues API tokens
type AuthHandler struct {
	jwtSecret   string
	adminSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtSecret, adminSecret string) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret, adminSecret: adminSecret}
}

type tokenRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "missing secret")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.adminSecret)) != 1 {
		response.Unauthorized(c, "invalid secret")
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, "admin")
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"token": token, "expiresIn": int(middleware.TokenTTL.Seconds())})
}
