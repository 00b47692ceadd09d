package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"wrist-ranking-backend/internal/authz"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/repository"
	"wrist-ranking-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegionService handles business logic for regions
type RegionService struct {
	repo      repository.RegionRepositoryInterface
	gate      *authz.Gate
	store     storage.Store
	validator *validator.Validate
}

// NewRegionService creates a new region service
func NewRegionService(repo repository.RegionRepositoryInterface, gate *authz.Gate, store storage.Store, validator *validator.Validate) *RegionService {
	return &RegionService{
		repo:      repo,
		gate:      gate,
		store:     store,
		validator: validator,
	}
}

// SaveRegionRequest represents the request to create or update a region
type SaveRegionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Province    string `json:"province"`
	Description string `json:"description"`
}

// RegionResponse represents a region in list and detail output
type RegionResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Province     string    `json:"province"`
	Description  string    `json:"description"`
	CoverImage   string    `json:"cover_image"`
	CreatorID    uuid.UUID `json:"creator_id"`
	CreatorName  string    `json:"creator_name"`
	PlayerCount  int64     `json:"player_count"`
	ContribCount int64     `json:"contrib_count"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// RegionDetailResponse is a region plus the caller's authority over it
type RegionDetailResponse struct {
	RegionResponse
	IsAdmin bool `json:"isAdmin"`
	IsOwner bool `json:"isOwner"`
}

// List retrieves regions newest first, filtered by province and keyword
func (s *RegionService) List(province, keyword string) ([]RegionResponse, error) {
	summaries, err := s.repo.List(province, keyword)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}

	responses := make([]RegionResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = toRegionResponse(&summary)
	}
	return responses, nil
}

// Provinces retrieves the distinct provinces regions exist in
func (s *RegionService) Provinces() ([]string, error) {
	provinces, err := s.repo.ListProvinces()
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	return provinces, nil
}

// Get retrieves one region. When a caller is known, the response carries
// whether they administer the region; super admins count as both admin and
// owner everywhere.
func (s *RegionService) Get(id uuid.UUID, callerID *uuid.UUID) (*RegionDetailResponse, error) {
	summary, err := s.repo.GetSummary(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRegionNotFound
		}
		return nil, fmt.Errorf("get region: %w", err)
	}

	detail := &RegionDetailResponse{RegionResponse: toRegionResponse(summary)}

	if callerID != nil {
		isAdmin, err := s.gate.IsRegionAdmin(*callerID, id)
		if err != nil {
			return nil, err
		}
		isOwner, err := s.gate.IsRegionOwner(*callerID, id)
		if err != nil {
			return nil, err
		}
		isSuper, err := s.gate.IsSuperAdmin(*callerID)
		if err != nil {
			return nil, err
		}
		detail.IsAdmin = isAdmin || isSuper
		detail.IsOwner = isOwner || isSuper
	}

	return detail, nil
}

// Create creates a region; the caller becomes its owner
func (s *RegionService) Create(callerID uuid.UUID, req *SaveRegionRequest) (uuid.UUID, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Province = strings.TrimSpace(req.Province)
	if err := s.validator.Struct(req); err != nil {
		return uuid.Nil, apperrors.NewValidationError("name", "region name is required")
	}
	if req.Province == "" {
		return uuid.Nil, apperrors.NewValidationError("province", "province is required")
	}

	if err := s.checkNameAvailable(req.Name, uuid.Nil); err != nil {
		return uuid.Nil, err
	}

	region := &models.Region{
		Name:        req.Name,
		Province:    req.Province,
		Description: req.Description,
		CreatorID:   callerID,
	}
	if err := s.repo.Create(region); err != nil {
		return uuid.Nil, fmt.Errorf("create region: %w", err)
	}
	return region.ID, nil
}

// Update changes a region's metadata; requires admin authority
func (s *RegionService) Update(callerID, regionID uuid.UUID, req *SaveRegionRequest) error {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("name", "region name is required")
	}

	region, err := s.repo.GetByID(regionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRegionNotFound
		}
		return fmt.Errorf("get region: %w", err)
	}

	if err := s.checkNameAvailable(req.Name, regionID); err != nil {
		return err
	}

	region.Name = req.Name
	region.Province = strings.TrimSpace(req.Province)
	region.Description = req.Description
	if err := s.repo.Update(region); err != nil {
		return fmt.Errorf("update region: %w", err)
	}
	return nil
}

// Delete removes a region and everything it owns; requires owner authority.
// Uploaded files are deleted best-effort after the rows are gone.
func (s *RegionService) Delete(callerID, regionID uuid.UUID) error {
	allowed, err := s.gate.CanAdministerRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrOwnerOnly
	}

	files, err := s.repo.DeleteCascade(regionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRegionNotFound
		}
		return fmt.Errorf("delete region: %w", err)
	}

	for _, file := range files {
		s.store.Delete(file)
	}
	return nil
}

// UploadCover replaces a region's cover image; requires admin authority
func (s *RegionService) UploadCover(callerID, regionID uuid.UUID, file *multipart.FileHeader) (string, error) {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", apperrors.ErrForbidden
	}

	coverPath, err := s.store.Save(file)
	if err != nil {
		return "", err
	}

	old, err := s.repo.UpdateCover(regionID, coverPath)
	if err != nil {
		s.store.Delete(coverPath)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrRegionNotFound
		}
		return "", fmt.Errorf("update cover: %w", err)
	}

	s.store.Delete(old)
	return coverPath, nil
}

func (s *RegionService) checkNameAvailable(name string, selfID uuid.UUID) error {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check region name: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return apperrors.ErrRegionExists
	}
	return nil
}

func toRegionResponse(summary *repository.RegionSummary) RegionResponse {
	return RegionResponse{
		ID:           summary.ID,
		Name:         summary.Name,
		Province:     summary.Province,
		Description:  summary.Description,
		CoverImage:   summary.CoverImage,
		CreatorID:    summary.CreatorID,
		CreatorName:  summary.CreatorName,
		PlayerCount:  summary.PlayerCount,
		ContribCount: summary.ContribCount,
		CreatedAt:    summary.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    summary.UpdatedAt.Format(time.RFC3339),
	}
}
