package handlers

import (
	"net/http"

	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegionAdminHandler handles HTTP requests for region admin rosters
type RegionAdminHandler struct {
	service service.RegionAdminServiceInterface
}

// NewRegionAdminHandler creates a new region admin handler
func NewRegionAdminHandler(service service.RegionAdminServiceInterface) *RegionAdminHandler {
	return &RegionAdminHandler{service: service}
}

// ListAdmins handles GET /api/regions/:id/admins
func (h *RegionAdminHandler) ListAdmins(c *gin.Context) {
	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	admins, err := h.service.List(regionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, admins)
}

// AddAdmin handles POST /api/regions/:id/admins
func (h *RegionAdminHandler) AddAdmin(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Add(userID, regionID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveAdmin handles DELETE /api/regions/:id/admins/:userId
func (h *RegionAdminHandler) RemoveAdmin(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	targetID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.service.Remove(userID, regionID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
