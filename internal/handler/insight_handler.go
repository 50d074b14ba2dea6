package handler

import (
	"github.com/gin-gonic/gin"

	"smartcarbon/internal/service"
)

// InsightHandler serves AI generated reduction advice.
type InsightHandler struct {
	insightService service.InsightService
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService service.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// Generate handles POST /api/v1/sessions/:session_id/insights
// Provider failures come back as 200 with generated=false and a readable text.
func (h *InsightHandler) Generate(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	insight, err := h.insightService.Generate(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, insight)
}
