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

// ContributionService handles business logic for contribution boards
type ContributionService struct {
	repo      repository.ContributionMemberRepositoryInterface
	gate      *authz.Gate
	store     storage.Store
	validator *validator.Validate
}

// NewContributionService creates a new contribution service
func NewContributionService(repo repository.ContributionMemberRepositoryInterface, gate *authz.Gate, store storage.Store, validator *validator.Validate) *ContributionService {
	return &ContributionService{
		repo:      repo,
		gate:      gate,
		store:     store,
		validator: validator,
	}
}

// CreateMemberRequest represents the request to append a member to a board,
// optionally with an initial note
type CreateMemberRequest struct {
	Type  models.BoardType `json:"type" validate:"required,oneof=resource honor"`
	Name  string           `json:"name" validate:"required,min=1,max=50"`
	Value string           `json:"value" validate:"max=100"`
	Total string           `json:"total" validate:"max=100"`
	Note  string           `json:"note"`
}

// UpdateMemberRequest represents the request to edit a member
type UpdateMemberRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Value string `json:"value" validate:"max=100"`
	Total string `json:"total" validate:"max=100"`
}

// ReorderMembersRequest represents a full permutation of one board
type ReorderMembersRequest struct {
	Type       models.BoardType `json:"type" validate:"required,oneof=resource honor"`
	OrderedIDs []uuid.UUID      `json:"orderedIds" validate:"required"`
}

// NoteResponse represents one entry in a member's note history
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	MemberID  uuid.UUID `json:"member_id"`
	NoteText  string    `json:"note_text"`
	CreatedAt string    `json:"created_at"`
}

// MemberResponse represents a ranked member with its note history
type MemberResponse struct {
	ID           uuid.UUID        `json:"id"`
	RegionID     uuid.UUID        `json:"region_id"`
	Type         models.BoardType `json:"type"`
	RankPosition int              `json:"rank_position"`
	Name         string           `json:"name"`
	Avatar       string           `json:"avatar"`
	Value        string           `json:"value"`
	Total        string           `json:"total"`
	Notes        []NoteResponse   `json:"notes"`
	LatestNote   string           `json:"latestNote"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

// List retrieves a board's members in rank order with note history
func (s *ContributionService) List(regionID uuid.UUID, boardType models.BoardType) ([]MemberResponse, error) {
	if !boardType.IsValid() {
		return nil, apperrors.ErrInvalidBoardType
	}

	members, err := s.repo.ListByBoard(regionID, boardType)
	if err != nil {
		return nil, fmt.Errorf("list contribution members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = toMemberResponse(&members[i])
	}
	return responses, nil
}

// Create appends a member to a board; requires admin authority
func (s *ContributionService) Create(callerID, regionID uuid.UUID, req *CreateMemberRequest) (*MemberResponse, error) {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	req.Name = strings.TrimSpace(req.Name)
	if !req.Type.IsValid() {
		return nil, apperrors.ErrInvalidBoardType
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "member name is required")
	}

	member := &models.ContributionMember{
		RegionID: regionID,
		Type:     req.Type,
		Name:     req.Name,
		Value:    req.Value,
		Total:    req.Total,
	}
	if err := s.repo.Create(member, strings.TrimSpace(req.Note)); err != nil {
		return nil, fmt.Errorf("create contribution member: %w", err)
	}

	resp := toMemberResponse(member)
	return &resp, nil
}

// Update edits a member's fields; requires admin authority
func (s *ContributionService) Update(callerID, regionID, memberID uuid.UUID, req *UpdateMemberRequest) error {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("name", "member name is required")
	}

	if err := s.repo.Update(regionID, memberID, req.Name, req.Value, req.Total); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("update contribution member: %w", err)
	}
	return nil
}

// Delete removes a member and compacts its board; requires admin authority
func (s *ContributionService) Delete(callerID, regionID, memberID uuid.UUID) error {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	deleted, err := s.repo.DeleteAndCompact(regionID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("delete contribution member: %w", err)
	}

	s.store.Delete(deleted.Avatar)
	return nil
}

// Reorder applies a drag-and-drop permutation of one board; requires admin
// authority
func (s *ContributionService) Reorder(callerID, regionID uuid.UUID, req *ReorderMembersRequest) error {
	allowed, err := s.gate.CanManageRegion(callerID, regionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	if !req.Type.IsValid() {
		return apperrors.ErrInvalidBoardType
	}

	if err := s.repo.Reorder(regionID, req.Type, req.OrderedIDs); err != nil {
		if errors.Is(err, apperrors.ErrInvalidPermutation) {
			return err
		}
		return fmt.Errorf("reorder contribution members: %w", err)
	}
	return nil
}

// UploadAvatar replaces a member's avatar; requires admin authority
func (s *ContributionService) UploadAvatar(callerID, regionID, memberID uuid.UUID, file *multipart.FileHeader) (string, error) {
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

	old, err := s.repo.UpdateAvatar(regionID, memberID, avatarPath)
	if err != nil {
		s.store.Delete(avatarPath)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrMemberNotFound
		}
		return "", fmt.Errorf("update avatar: %w", err)
	}

	s.store.Delete(old)
	return avatarPath, nil
}

func toMemberResponse(member *models.ContributionMember) MemberResponse {
	notes := make([]NoteResponse, len(member.Notes))
	latest := ""
	for i := range member.Notes {
		notes[i] = toNoteResponse(&member.Notes[i])
		latest = member.Notes[i].NoteText
	}

	return MemberResponse{
		ID:           member.ID,
		RegionID:     member.RegionID,
		Type:         member.Type,
		RankPosition: member.RankPosition,
		Name:         member.Name,
		Avatar:       member.Avatar,
		Value:        member.Value,
		Total:        member.Total,
		Notes:        notes,
		LatestNote:   latest,
		CreatedAt:    member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    member.UpdatedAt.Format(time.RFC3339),
	}
}

func toNoteResponse(note *models.ContributionNote) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		MemberID:  note.MemberID,
		NoteText:  note.NoteText,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
	}
}
