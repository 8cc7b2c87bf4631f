package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nasaem/pos-api/internal/application/service"
	"github.com/nasaem/pos-api/internal/presentation/http/dto/response"
)

// CatalogHandler serves the static product catalog
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles listing the catalog products.
func (h *CatalogHandler) List(c *gin.Context) {
	response.OK(c, "Products retrieved successfully", h.catalogService.Products())
}

// Categories handles listing the distinct product categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	response.OK(c, "Categories retrieved successfully", h.catalogService.Categories())
}
