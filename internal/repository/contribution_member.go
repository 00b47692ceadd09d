package repository

import (
	"wrist-ranking-backend/internal/database/models"
	"wrist-ranking-backend/internal/ranking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContributionMemberRepository handles database operations for contribution
// board members. Boards are uncapped but keep the same dense rank sequence
// as player boards.
type ContributionMemberRepository struct {
	db     *gorm.DB
	ledger *ranking.Ledger
}

// NewContributionMemberRepository creates a new contribution member repository
func NewContributionMemberRepository(db *gorm.DB) *ContributionMemberRepository {
	return &ContributionMemberRepository{
		db: db,
		ledger: ranking.NewLedger(ranking.Board{
			Table:  models.ContributionMember{}.TableName(),
			Column: "type",
		}),
	}
}

func memberPartition(regionID uuid.UUID, boardType models.BoardType) ranking.Partition {
	return ranking.Partition{RegionID: regionID, Value: string(boardType)}
}

// ListByBoard retrieves a board's members in rank order with their full note
// history, oldest note first
func (r *ContributionMemberRepository) ListByBoard(regionID uuid.UUID, boardType models.BoardType) ([]models.ContributionMember, error) {
	var members []models.ContributionMember
	err := r.db.Where("region_id = ? AND type = ?", regionID, boardType).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("contribution_notes.created_at ASC")
		}).
		Order("rank_position ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetByID retrieves a member by ID
func (r *ContributionMemberRepository) GetByID(id uuid.UUID) (*models.ContributionMember, error) {
	var member models.ContributionMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetInRegion retrieves a member scoped to a region
func (r *ContributionMemberRepository) GetInRegion(regionID, id uuid.UUID) (*models.ContributionMember, error) {
	var member models.ContributionMember
	err := r.db.First(&member, "id = ? AND region_id = ?", id, regionID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Create appends a member at the end of its board, optionally recording an
// initial note in the same transaction
func (r *ContributionMemberRepository) Create(member *models.ContributionMember, initialNote string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		next, err := r.ledger.NextPosition(tx, memberPartition(member.RegionID, member.Type))
		if err != nil {
			return err
		}
		member.RankPosition = next
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		if initialNote != "" {
			note := &models.ContributionNote{
				MemberID: member.ID,
				NoteText: initialNote,
			}
			return tx.Create(note).Error
		}
		return nil
	})
}

// Update changes a member's editable fields without touching its rank
func (r *ContributionMemberRepository) Update(regionID, id uuid.UUID, name, value, total string) error {
	result := r.db.Model(&models.ContributionMember{}).
		Where("id = ? AND region_id = ?", id, regionID).
		Updates(map[string]interface{}{
			"name":  name,
			"value": value,
			"total": total,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateAvatar replaces a member's avatar path and returns the previous one
func (r *ContributionMemberRepository) UpdateAvatar(regionID, id uuid.UUID, avatarPath string) (string, error) {
	var old string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var member models.ContributionMember
		if err := tx.First(&member, "id = ? AND region_id = ?", id, regionID).Error; err != nil {
			return err
		}
		old = member.Avatar
		return tx.Model(&models.ContributionMember{}).
			Where("id = ?", id).
			Update("avatar", avatarPath).Error
	})
	if err != nil {
		return "", err
	}
	return old, nil
}

// DeleteAndCompact removes a member (its notes cascade) and closes the rank
// gap, returning the deleted row so the caller can clean up its avatar
func (r *ContributionMemberRepository) DeleteAndCompact(regionID, id uuid.UUID) (*models.ContributionMember, error) {
	var deleted models.ContributionMember
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "id = ? AND region_id = ?", id, regionID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ContributionMember{}, "id = ?", deleted.ID).Error; err != nil {
			return err
		}
		return r.ledger.Compact(tx, memberPartition(deleted.RegionID, deleted.Type), deleted.RankPosition)
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Reorder applies a full permutation of a board's members
func (r *ContributionMemberRepository) Reorder(regionID uuid.UUID, boardType models.BoardType, orderedIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return r.ledger.Reorder(tx, memberPartition(regionID, boardType), orderedIDs)
	})
}
