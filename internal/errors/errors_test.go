package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "region"}
		assert.Equal(t, "region not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "region"}
		err2 := &NotFoundError{Entity: "region"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "region"}
		err2 := &NotFoundError{Entity: "player"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrRegionNotFound, ErrRegionNotFound))
		assert.False(t, errors.Is(ErrRegionNotFound, ErrPlayerNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPlayerNotFound))
		assert.False(t, IsNotFound(ErrRankingFull))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "region", Context: "with this name"}
		assert.Equal(t, "region already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "region"}
		assert.Equal(t, "region already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "region", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "region", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrRegionExists))
		assert.False(t, IsAlreadyExists(ErrRegionNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "hand", Message: "must be left or right"}
		assert.Equal(t, "validation error: hand - must be left or right", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "cannot remove owner"}
		assert.Equal(t, "validation error: cannot remove owner", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("name", "required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrRegionNotFound))
		assert.True(t, IsValidation(ErrCannotRemoveOwner))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrForbidden))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrForbidden))
		assert.True(t, IsAuthorization(ErrOwnerOnly))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestRankingErrors(t *testing.T) {
	assert.Error(t, ErrRankingFull)
	assert.Error(t, ErrInvalidPermutation)
	assert.False(t, IsNotFound(ErrInvalidPermutation))
	assert.False(t, IsValidation(ErrRankingFull))
}
