package service

import (
	"errors"
	"fmt"
	"strings"

	"wrist-ranking-backend/internal/authz"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService handles business logic for contribution note history. Notes
// are addressed by member, not by region, so authority checks resolve the
// owning member's region first.
type NoteService struct {
	notes   repository.ContributionNoteRepositoryInterface
	members repository.ContributionMemberRepositoryInterface
	gate    *authz.Gate
}

// NewNoteService creates a new note service
func NewNoteService(notes repository.ContributionNoteRepositoryInterface, members repository.ContributionMemberRepositoryInterface, gate *authz.Gate) *NoteService {
	return &NoteService{
		notes:   notes,
		members: members,
		gate:    gate,
	}
}

// NoteTextRequest carries the note body for create and update
type NoteTextRequest struct {
	Text string `json:"text"`
}

// List retrieves a member's notes oldest first
func (s *NoteService) List(memberID uuid.UUID) ([]NoteResponse, error) {
	if _, err := s.members.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get contribution member: %w", err)
	}

	notes, err := s.notes.ListByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	responses := make([]NoteResponse, len(notes))
	for i := range notes {
		responses[i] = toNoteResponse(&notes[i])
	}
	return responses, nil
}

// Add appends a note to a member's history; requires admin authority over
// the member's region
func (s *NoteService) Add(callerID, memberID uuid.UUID, req *NoteTextRequest) (*NoteResponse, error) {
	member, err := s.members.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get contribution member: %w", err)
	}

	allowed, err := s.gate.CanManageRegion(callerID, member.RegionID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.NewValidationError("text", "note text is required")
	}

	note := &models.ContributionNote{
		MemberID: memberID,
		NoteText: text,
	}
	if err := s.notes.Create(note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

// Update edits an existing note's text; requires admin authority over the
// owning member's region
func (s *NoteService) Update(callerID, noteID uuid.UUID, req *NoteTextRequest) error {
	note, err := s.notes.GetWithMember(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("get note: %w", err)
	}

	allowed, err := s.gate.CanManageRegion(callerID, note.Member.RegionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return apperrors.NewValidationError("text", "note text is required")
	}

	if err := s.notes.Update(noteID, text); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Delete removes a note; requires admin authority over the owning member's
// region
func (s *NoteService) Delete(callerID, noteID uuid.UUID) error {
	note, err := s.notes.GetWithMember(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("get note: %w", err)
	}

	allowed, err := s.gate.CanManageRegion(callerID, note.Member.RegionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	if err := s.notes.Delete(noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
