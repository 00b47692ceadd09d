package repository

import (
	"wrist-ranking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContributionNoteRepository handles database operations for note history
type ContributionNoteRepository struct {
	db *gorm.DB
}

// NewContributionNoteRepository creates a new contribution note repository
func NewContributionNoteRepository(db *gorm.DB) *ContributionNoteRepository {
	return &ContributionNoteRepository{db: db}
}

// Create appends a note to a member's history
func (r *ContributionNoteRepository) Create(note *models.ContributionNote) error {
	return r.db.Create(note).Error
}

// ListByMember retrieves a member's note history, oldest first
func (r *ContributionNoteRepository) ListByMember(memberID uuid.UUID) ([]models.ContributionNote, error) {
	var notes []models.ContributionNote
	err := r.db.Where("member_id = ?", memberID).
		Order("created_at ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// GetWithMember retrieves a note with its owning member, which carries the
// region the authorization check needs
func (r *ContributionNoteRepository) GetWithMember(id uuid.UUID) (*models.ContributionNote, error) {
	var note models.ContributionNote
	err := r.db.Preload("Member").First(&note, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Update rewrites a note's text
func (r *ContributionNoteRepository) Update(id uuid.UUID, text string) error {
	result := r.db.Model(&models.ContributionNote{}).
		Where("id = ?", id).
		Update("note_text", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a note
func (r *ContributionNoteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContributionNote{}, "id = ?", id).Error
}
