package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcarbon/internal/service"
)

// SessionHandler handles session lifecycle endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	session, err := h.sessionService.Create(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// Get handles GET /api/v1/sessions/:session_id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionFromContext(c)
	if !ok {
		return
	}

	summary, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Delete handles DELETE /api/v1/sessions/:session_id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := sessionFromContext(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "session deleted"})
}

// SetCredential handles PUT /api/v1/sessions/:session_id/credential
func (h *SessionHandler) SetCredential(c *gin.Context) {
	id, ok := sessionFromContext(c)
	if !ok {
		return
	}

	var req struct {
		APIKey string `json:"api_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "api_key is required")
		return
	}

	if err := h.sessionService.SetCredential(c.Request.Context(), id, req.APIKey); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "credential updated"})
}
