package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/service"
)

// View values accepted by List.
const (
	ViewAll    = "all"
	ViewRecent = "recent"
)

// DocumentHandler handles extraction and document confirmation endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// ExtractUpload handles POST /api/v1/sessions/:session_id/extract
// Runs OCR and field extraction on an uploaded bill image. Nothing is recorded.
func (h *DocumentHandler) ExtractUpload(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.documentService.ExtractUpload(c.Request.Context(), service.ExtractUploadInput{
		SessionID: sessionID,
		Category:  domain.Category(c.PostForm("category")),
		File:      file,
		Size:      header.Size,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ExtractText handles POST /api/v1/sessions/:session_id/extract/text
func (h *DocumentHandler) ExtractText(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Text     string          `json:"text"`
		Category domain.Category `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "category is required")
		return
	}

	result, err := h.documentService.ExtractText(c.Request.Context(), service.ExtractTextInput{
		SessionID: sessionID,
		Category:  req.Category,
		Text:      req.Text,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Record handles POST /api/v1/sessions/:session_id/documents
// Source defaults to manual when omitted.
func (h *DocumentHandler) Record(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Category domain.Category       `json:"category" binding:"required"`
		Source   domain.DocumentSource `json:"source"`
		Amount   float64               `json:"amount"`
		Cost     float64               `json:"cost"`
		Date     string                `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "category is required; amount and cost must be numbers")
		return
	}
	if req.Source == "" {
		req.Source = domain.SourceManual
	}

	doc, err := h.documentService.Record(c.Request.Context(), service.RecordInput{
		SessionID: sessionID,
		Category:  req.Category,
		Source:    req.Source,
		Amount:    req.Amount,
		Cost:      req.Cost,
		Date:      req.Date,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// List handles GET /api/v1/sessions/:session_id/documents
// ?view=recent returns the ten most recent documents by date.
func (h *DocumentHandler) List(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	view := c.DefaultQuery("view", ViewAll)
	if view != ViewAll && view != ViewRecent {
		RespondError(c, http.StatusBadRequest, "INVALID_VIEW", "view must be 'all' or 'recent'")
		return
	}

	docs, err := h.documentService.List(c.Request.Context(), sessionID, view == ViewRecent)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondList(c, docs, ListMeta{Total: len(docs), View: view})
}
