package handlers

import (
	"errors"
	"net/http"

	apperrors "wrist-ranking-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps a service error onto an HTTP status and JSON body.
// Validation failures, capacity and permutation rejections surface as 400,
// authentication as 401, authorization as 403, missing entities as 404;
// everything else is a 500. A unique-index violation that escapes the
// service layer means two writers raced on one board partition; the loser
// gets a 400 and can simply retry.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err),
		apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrRankingFull),
		errors.Is(err, apperrors.ErrInvalidPermutation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Conflicting concurrent update, please retry"})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseIDParam parses a UUID path parameter, writing a 400 response on
// failure
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}
