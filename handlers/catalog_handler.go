package handlers

import (
	"net/http"
	"strings"

	"serviify-backend/models"
	"serviify-backend/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	searchService  *services.SearchService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cs *services.CatalogService, ss *services.SearchService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: cs,
		searchService:  ss,
	}
}

// SearchServices ranks the catalog against a free-text query
// GET /api/services?search=...
func (h *CatalogHandler) SearchServices(c *gin.Context) {
	query := c.Query("search")
	if query == "" {
		respondMissingParam(c, "search")
		return
	}

	results, err := h.searchService.Search(query)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": results, "count": len(results)})
}

// GetService returns one catalog service
// GET /api/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.catalogService.GetByID(c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondNotFound(c, err.Error())
			return
		}
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, service.ToResponse(0))
}

// CreateService adds a service, generating its tags
// POST /api/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	service, err := h.catalogService.Create(&req)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, service.ToResponse(0))
}

// UpdateService updates a service, regenerating its tags
// PUT /api/services/:id
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	service, err := h.catalogService.Update(c.Param("id"), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondNotFound(c, err.Error())
			return
		}
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, service.ToResponse(0))
}

// BatchUpdateTags regenerates tags across the catalog
// POST /api/services/batch-update-tags
func (h *CatalogHandler) BatchUpdateTags(c *gin.Context) {
	updated, err := h.catalogService.BatchUpdateTags()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

// GetStats returns catalog and interaction counts
// GET /api/stats
func (h *CatalogHandler) GetStats(c *gin.Context) {
	stats, err := h.catalogService.Stats()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
