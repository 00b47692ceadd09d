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
	"wrist-ranking-backend/internal/ranking"
	"wrist-ranking-backend/internal/repository"
	"wrist-ranking-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for ranked players
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	gate      *authz.Gate
	store     storage.Store
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, gate *authz.Gate, store storage.Store, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		gate:      gate,
		store:     store,
		validator: validator,
	}
}

// CreatePlayerRequest represents the request to append a player to a board
type CreatePlayerRequest struct {
	Hand  models.Hand `json:"hand" validate:"required,oneof=left right"`
	Name  string      `json:"name" validate:"required,min=1,max=50"`
	Power string      `json:"power" validate:"max=50"`
	Skill string      `json:"skill" validate:"max=100"`
}

// UpdatePlayerRequest represents the request to edit a player
type UpdatePlayerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Power string `json:"power" validate:"max=50"`
	Skill string `json:"skill" validate:"max=100"`
}

// ReorderPlayersRequest represents a full permutation of one board
type ReorderPlayersRequest struct {
	Hand       models.Hand `json:"hand" validate:"required,oneof=left right"`
	OrderedIDs []uuid.UUID `json:"orderedIds" validate:"required"`
}

// PlayerResponse represents a ranked player with its derived title
type PlayerResponse struct {
	ID           uuid.UUID   `json:"id"`
	RegionID     uuid.UUID   `json:"region_id"`
	Hand         models.Hand `json:"hand"`
	RankPosition int         `json:"rank_position"`
	Name         string      `json:"name"`
	Avatar       string      `json:"avatar"`
	Power        string      `json:"power"`
	Skill        string      `json:"skill"`
	Title        string      `json:"title"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// List retrieves a board's players in rank order
func (s *PlayerService) List(regionID uuid.UUID, hand models.Hand) ([]PlayerResponse, error) {
	if !hand.IsValid() {
		return nil, apperrors.ErrInvalidHand
	}

	players, err := s.repo.ListByBoard(regionID, hand)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = toPlayerResponse(&players[i])
	}
	return responses, nil
}

// Create appends a player to a board; requires admin authority
func (s *PlayerService) Create(callerID, regionID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error) {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	req.Name = strings.TrimSpace(req.Name)
	if !req.Hand.IsValid() {
		return nil, apperrors.ErrInvalidHand
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "player name is required")
	}

	player := &models.Player{
		RegionID: regionID,
		Hand:     req.Hand,
		Name:     req.Name,
		Power:    req.Power,
		Skill:    req.Skill,
	}
	if err := s.repo.Create(player); err != nil {
		if errors.Is(err, apperrors.ErrRankingFull) {
			return nil, err
		}
		return nil, fmt.Errorf("create player: %w", err)
	}

	resp := toPlayerResponse(player)
	return &resp, nil
}

// Update edits a player's fields; requires admin authority
func (s *PlayerService) Update(callerID, regionID, playerID uuid.UUID, req *UpdatePlayerRequest) error {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("name", "player name is required")
	}

	if err := s.repo.Update(regionID, playerID, req.Name, req.Power, req.Skill); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

// Delete removes a player and compacts its board; requires admin authority
func (s *PlayerService) Delete(callerID, regionID, playerID uuid.UUID) error {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	deleted, err := s.repo.DeleteAndCompact(regionID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("delete player: %w", err)
	}

	s.store.Delete(deleted.Avatar)
	return nil
}

// Reorder applies a drag-and-drop permutation of one board; requires admin
// authority
func (s *PlayerService) Reorder(callerID, regionID uuid.UUID, req *ReorderPlayersRequest) error {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	if !req.Hand.IsValid() {
		return apperrors.ErrInvalidHand
	}

	if err := s.repo.Reorder(regionID, req.Hand, req.OrderedIDs); err != nil {
		if errors.Is(err, apperrors.ErrInvalidPermutation) {
			return err
		}
		return fmt.Errorf("reorder players: %w", err)
	}
	return nil
}

// UploadAvatar replaces a player's avatar; requires admin authority
func (s *PlayerService) UploadAvatar(callerID, regionID, playerID uuid.UUID, file *multipart.FileHeader) (string, error) {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", apperrors.ErrForbidden
	}

	avatarPath, err := s.store.Save(file)
	if err != nil {
		return "", err
	}

	old, err := s.repo.UpdateAvatar(regionID, playerID, avatarPath)
	if err != nil {
		s.store.Delete(avatarPath)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrPlayerNotFound
		}
		return "", fmt.Errorf("update avatar: %w", err)
	}

	s.store.Delete(old)
	return avatarPath, nil
}

func toPlayerResponse(player *models.Player) PlayerResponse {
	return PlayerResponse{
		ID:           player.ID,
		RegionID:     player.RegionID,
		Hand:         player.Hand,
		RankPosition: player.RankPosition,
		Name:         player.Name,
		Avatar:       player.Avatar,
		Power:        player.Power,
		Skill:        player.Skill,
		Title:        ranking.Title(player.RankPosition),
		CreatedAt:    player.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    player.UpdatedAt.Format(time.RFC3339),
	}
}
