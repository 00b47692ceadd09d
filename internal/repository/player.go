package repository

import (
	"wrist-ranking-backend/internal/database/models"
	"wrist-ranking-backend/internal/ranking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for ranked players. Every
// position-mutating method runs in one transaction and keeps the dense
// 1..N rank sequence of the touched (region, hand) board intact.
type PlayerRepository struct {
	db     *gorm.DB
	ledger *ranking.Ledger
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{
		db: db,
		ledger: ranking.NewLedger(ranking.Board{
			Table:    models.Player{}.TableName(),
			Column:   "hand",
			Capacity: models.MaxPlayerRank,
		}),
	}
}

func playerPartition(regionID uuid.UUID, hand models.Hand) ranking.Partition {
	return ranking.Partition{RegionID: regionID, Value: string(hand)}
}

// ListByBoard retrieves a board's players in rank order
func (r *PlayerRepository) ListByBoard(regionID uuid.UUID, hand models.Hand) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("region_id = ? AND hand = ?", regionID, hand).
		Order("rank_position ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetByID retrieves a player scoped to a region
func (r *PlayerRepository) GetByID(regionID, id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ? AND region_id = ?", id, regionID).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Create appends a player at the end of its board, rejecting the insert with
// ErrRankingFull once the board holds 30 entries
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		next, err := r.ledger.NextPosition(tx, playerPartition(player.RegionID, player.Hand))
		if err != nil {
			return err
		}
		player.RankPosition = next
		return tx.Create(player).Error
	})
}

// Update changes a player's editable fields without touching its rank
func (r *PlayerRepository) Update(regionID, id uuid.UUID, name, power, skill string) error {
	result := r.db.Model(&models.Player{}).
		Where("id = ? AND region_id = ?", id, regionID).
		Updates(map[string]interface{}{
			"name":  name,
			"power": power,
			"skill": skill,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateAvatar replaces a player's avatar path and returns the previous one
func (r *PlayerRepository) UpdateAvatar(regionID, id uuid.UUID, avatarPath string) (string, error) {
	var old string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, "id = ? AND region_id = ?", id, regionID).Error; err != nil {
			return err
		}
		old = player.Avatar
		return tx.Model(&models.Player{}).
			Where("id = ?", id).
			Update("avatar", avatarPath).Error
	})
	if err != nil {
		return "", err
	}
	return old, nil
}

// DeleteAndCompact removes a player and shifts everyone ranked below it up
// by one, returning the deleted row so the caller can clean up its avatar
func (r *PlayerRepository) DeleteAndCompact(regionID, id uuid.UUID) (*models.Player, error) {
	var deleted models.Player
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "id = ? AND region_id = ?", id, regionID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Player{}, "id = ?", deleted.ID).Error; err != nil {
			return err
		}
		return r.ledger.Compact(tx, playerPartition(deleted.RegionID, deleted.Hand), deleted.RankPosition)
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// Reorder applies a full permutation of a board's players
func (r *PlayerRepository) Reorder(regionID uuid.UUID, hand models.Hand, orderedIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return r.ledger.Reorder(tx, playerPartition(regionID, hand), orderedIDs)
	})
}
