package handler

import (
	"github.com/gin-gonic/gin"

	"smartcarbon/internal/domain"
)

// CategoryHandler exposes the emission factor table.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	factors := domain.EmissionFactors()
	RespondList(c, factors, ListMeta{Total: len(factors)})
}
