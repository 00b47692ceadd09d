package service

import (
	"errors"
	"fmt"
	"time"

	"wrist-ranking-backend/internal/authz"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegionAdminService handles business logic for the admin roster
type RegionAdminService struct {
	repo      repository.RegionAdminRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	gate      *authz.Gate
	validator *validator.Validate
}

// NewRegionAdminService creates a new region admin service
func NewRegionAdminService(repo repository.RegionAdminRepositoryInterface, userRepo repository.UserRepositoryInterface, gate *authz.Gate, validator *validator.Validate) *RegionAdminService {
	return &RegionAdminService{
		repo:      repo,
		userRepo:  userRepo,
		gate:      gate,
		validator: validator,
	}
}

// AddAdminRequest represents the request to add an admin by username
type AddAdminRequest struct {
	Username string `json:"username" validate:"required"`
}

// AdminResponse represents one entry of a region's admin roster
type AdminResponse struct {
	ID        uuid.UUID        `json:"id"`
	RegionID  uuid.UUID        `json:"region_id"`
	UserID    uuid.UUID        `json:"user_id"`
	Role      models.AdminRole `json:"role"`
	Username  string           `json:"username"`
	Nickname  string           `json:"nickname"`
	CreatedAt string           `json:"created_at"`
}

// List retrieves a region's admin roster, owner first
func (s *RegionAdminService) List(regionID uuid.UUID) ([]AdminResponse, error) {
	entries, err := s.repo.ListByRegion(regionID)
	if err != nil {
		return nil, fmt.Errorf("list region admins: %w", err)
	}

	responses := make([]AdminResponse, len(entries))
	for i, entry := range entries {
		responses[i] = AdminResponse{
			ID:        entry.ID,
			RegionID:  entry.RegionID,
			UserID:    entry.UserID,
			Role:      entry.Role,
			Username:  entry.Username,
			Nickname:  entry.Nickname,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// Add grants the admin role to a user by username; requires owner authority
func (s *RegionAdminService) Add(callerID, regionID uuid.UUID, req *AddAdminRequest) error {
	allowed, err := s.gate.CanAdministerRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrOwnerOnly
	}

	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("username", "username is required")
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	existing, err := s.repo.Get(regionID, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check existing admin: %w", err)
	}
	if existing != nil {
		return apperrors.ErrAdminExists
	}

	admin := &models.RegionAdmin{
		RegionID: regionID,
		UserID:   user.ID,
		Role:     models.AdminRoleAdmin,
	}
	if err := s.repo.Create(admin); err != nil {
		return fmt.Errorf("create region admin: %w", err)
	}
	return nil
}

// Remove revokes a user's admin role; requires owner authority. The owner
// entry itself can never be removed, not even by the owner.
func (s *RegionAdminService) Remove(callerID, regionID, targetUserID uuid.UUID) error {
	allowed, err := s.gate.CanAdministerRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrOwnerOnly
	}

	target, err := s.repo.Get(regionID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAdminNotFound
		}
		return fmt.Errorf("get region admin: %w", err)
	}
	if target.Role == models.AdminRoleOwner {
		return apperrors.ErrCannotRemoveOwner
	}

	if err := s.repo.Delete(regionID, targetUserID); err != nil {
		return fmt.Errorf("delete region admin: %w", err)
	}
	return nil
}
