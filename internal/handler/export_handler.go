package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/service"
)

// ExportHandler streams a session's documents as a spreadsheet.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles GET /api/v1/sessions/:session_id/export?format=xlsx|csv
func (h *ExportHandler) Export(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportFormatXLSX)))
	out, err := h.exportService.Export(c.Request.Context(), sessionID, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}
