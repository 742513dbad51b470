package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devcanvas/internal/portfolio"
)

// TemplateHandler lists the template catalog.
type TemplateHandler struct{}

// NewTemplateHandler constructs a TemplateHandler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// ListTemplates returns the template catalog.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": portfolio.Templates()})
}
