package service

import (
	"errors"
	"fmt"

	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles registration, login and password management
type UserService struct {
	repo      repository.UserRepositoryInterface
	auth      *auth.Service
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, authService *auth.Service, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		auth:      authService,
		validator: validator,
	}
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Nickname string `json:"nickname" validate:"max=50"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UserResponse represents the public view of an account
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Nickname     string    `json:"nickname"`
	IsSuperAdmin bool      `json:"is_super_admin"`
}

// AuthResponse carries a signed token together with the account it belongs to
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register creates an account and signs it in
func (s *UserService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing username: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameExists
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Nickname:     nickname,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.signIn(user)
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !s.auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.signIn(user)
}

// Verify re-reads the account behind a valid token
func (s *UserService) Verify(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	resp := s.toResponse(user)
	return &resp, nil
}

// ChangePassword verifies the old password before replacing it
func (s *UserService) ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("newPassword", "must be at least 6 characters")
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	if !s.auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		return apperrors.ErrWrongOldPassword
	}

	hash, err := s.auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *UserService) signIn(user *models.User) (*AuthResponse, error) {
	token, err := s.auth.GenerateToken(user.ID, user.Username, user.Nickname)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token: token,
		User:  s.toResponse(user),
	}, nil
}

func (s *UserService) toResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Nickname:     user.Nickname,
		IsSuperAdmin: user.IsSuperAdmin,
	}
}
