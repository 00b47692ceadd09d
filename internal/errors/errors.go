package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound   = &NotFoundError{Entity: "user"}
	ErrRegionNotFound = &NotFoundError{Entity: "region"}
	ErrPlayerNotFound = &NotFoundError{Entity: "player"}
	ErrMemberNotFound = &NotFoundError{Entity: "contribution member"}
	ErrNoteNotFound   = &NotFoundError{Entity: "contribution note"}
	ErrAdminNotFound  = &NotFoundError{Entity: "region admin"}
)

// Already Exists Errors
var (
	ErrUsernameExists = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrRegionExists   = &AlreadyExistsError{Entity: "region", Context: "with this name"}
	ErrAdminExists    = &AlreadyExistsError{Entity: "region admin", Context: "for this user"}
)

// Ranking Errors
var (
	// ErrRankingFull is returned when appending to a player board that
	// already holds its maximum of 30 ranked entries.
	ErrRankingFull = errors.New("ranking is full (30 entries max)")

	// ErrInvalidPermutation is returned when a reorder request does not
	// list exactly the current entries of the board being reordered.
	ErrInvalidPermutation = errors.New("ordered ids are not a permutation of the current ranking")
)

// Business Logic Errors
var (
	ErrCannotRemoveOwner = &ValidationError{Message: "cannot remove owner"}
	ErrInvalidHand       = &ValidationError{Field: "hand", Message: "must be left or right"}
	ErrInvalidBoardType  = &ValidationError{Field: "type", Message: "must be resource or honor"}
	ErrUploadNotImage    = &ValidationError{Field: "file", Message: "only image files are allowed"}
	ErrUploadTooLarge    = &ValidationError{Field: "file", Message: "file exceeds the size limit"}
	ErrUploadMissing     = &ValidationError{Field: "file", Message: "no file provided"}
)

// Authentication / Authorization Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrWrongOldPassword   = &AuthenticationError{Message: "old password is incorrect"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrForbidden          = &AuthorizationError{Message: "insufficient permissions for this region"}
	ErrOwnerOnly          = &AuthorizationError{Message: "only the region owner or a super admin may do this"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
