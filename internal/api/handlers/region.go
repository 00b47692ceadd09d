package handlers

import (
	"net/http"

	"wrist-ranking-backend/internal/auth"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegionHandler handles HTTP requests for regions
type RegionHandler struct {
	service service.RegionServiceInterface
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(service service.RegionServiceInterface) *RegionHandler {
	return &RegionHandler{service: service}
}

// ListRegions handles GET /api/regions
func (h *RegionHandler) ListRegions(c *gin.Context) {
	regions, err := h.service.List(c.Query("province"), c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, regions)
}

// ListProvinces handles GET /api/provinces
func (h *RegionHandler) ListProvinces(c *gin.Context) {
	provinces, err := h.service.Provinces()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, provinces)
}

// GetRegion handles GET /api/regions/:id. When the caller is authenticated
// the response carries their admin and owner standing for the region.
func (h *RegionHandler) GetRegion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var callerID *uuid.UUID
	if userID, ok := auth.GetUserID(c); ok {
		callerID = &userID
	}

	region, err := h.service.Get(id, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, region)
}

// CreateRegion handles POST /api/regions
func (h *RegionHandler) CreateRegion(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.SaveRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.service.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// UpdateRegion handles PUT /api/regions/:id
func (h *RegionHandler) UpdateRegion(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SaveRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(userID, id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteRegion handles DELETE /api/regions/:id
func (h *RegionHandler) DeleteRegion(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadCover handles POST /api/regions/:id/cover
func (h *RegionHandler) UploadCover(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("cover")
	if err != nil {
		respondError(c, apperrors.ErrUploadMissing)
		return
	}

	path, err := h.service.UploadCover(userID, id, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cover": path})
}
