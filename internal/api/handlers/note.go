package handlers

import (
	"net/http"

	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles HTTP requests for contribution note history
type NoteHandler struct {
	service service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{service: service}
}

// ListNotes handles GET /api/contribution/:memberId/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}

	notes, err := h.service.List(memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// AddNote handles POST /api/contribution/:memberId/notes
func (h *NoteHandler) AddNote(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}

	var req service.NoteTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	note, err := h.service.Add(userID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

// UpdateNote handles PUT /api/contribution/notes/:noteId
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	var req service.NoteTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(userID, noteID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteNote handles DELETE /api/contribution/notes/:noteId
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	if err := h.service.Delete(userID, noteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
