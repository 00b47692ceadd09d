package handlers

import (
	"net/http"

	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContributionHandler handles HTTP requests for contribution boards
type ContributionHandler struct {
	service service.ContributionServiceInterface
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(service service.ContributionServiceInterface) *ContributionHandler {
	return &ContributionHandler{service: service}
}

// ListMembers handles GET /api/regions/:id/contribution/:type
func (h *ContributionHandler) ListMembers(c *gin.Context) {
	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.service.List(regionID, models.BoardType(c.Param("type")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// CreateMember handles POST /api/regions/:id/contribution
func (h *ContributionHandler) CreateMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.Create(userID, regionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "member": member})
}

// UpdateMember handles PUT /api/regions/:id/contribution/:memberId
func (h *ContributionHandler) UpdateMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(userID, regionID, memberID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteMember handles DELETE /api/regions/:id/contribution/:memberId
func (h *ContributionHandler) DeleteMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}

	if err := h.service.Delete(userID, regionID, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderMembers handles POST /api/regions/:id/contribution/reorder
func (h *ContributionHandler) ReorderMembers(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReorderMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Reorder(userID, regionID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadMemberAvatar handles POST /api/regions/:id/contribution/:memberId/avatar
func (h *ContributionHandler) UploadMemberAvatar(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, apperrors.ErrUploadMissing)
		return
	}

	path, err := h.service.UploadAvatar(userID, regionID, memberID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "avatar": path})
}
