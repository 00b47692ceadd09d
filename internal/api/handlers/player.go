package handlers

import (
	"net/http"

	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for ranked player boards
type PlayerHandler struct {
	service service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// ListPlayers handles GET /api/regions/:id/players/:hand
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	players, err := h.service.List(regionID, models.Hand(c.Param("hand")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// CreatePlayer handles POST /api/regions/:id/players
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	player, err := h.service.Create(userID, regionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "player": player})
}

// UpdatePlayer handles PUT /api/regions/:id/players/:playerId
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(userID, regionID, playerID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePlayer handles DELETE /api/regions/:id/players/:playerId
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}

	if err := h.service.Delete(userID, regionID, playerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderPlayers handles POST /api/regions/:id/players/reorder
func (h *PlayerHandler) ReorderPlayers(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReorderPlayersRequest
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

// UploadPlayerAvatar handles POST /api/regions/:id/players/:playerId/avatar
func (h *PlayerHandler) UploadPlayerAvatar(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	regionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, apperrors.ErrUploadMissing)
		return
	}

	path, err := h.service.UploadAvatar(userID, regionID, playerID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "avatar": path})
}
