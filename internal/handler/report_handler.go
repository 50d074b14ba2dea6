package handler

import (
	"github.com/gin-gonic/gin"

	"smartcarbon/internal/service"
)

// ReportHandler serves the read-only dashboard, compliance, and
// recommendation views.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard handles GET /api/v1/sessions/:session_id/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	dashboard, err := h.reportService.Dashboard(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dashboard)
}

// Compliance handles GET /api/v1/sessions/:session_id/compliance
func (h *ReportHandler) Compliance(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	report, err := h.reportService.Compliance(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Recommendations handles GET /api/v1/sessions/:session_id/recommendations
func (h *ReportHandler) Recommendations(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	recs, err := h.reportService.Recommendations(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, recs, ListMeta{Total: len(recs)})
}
