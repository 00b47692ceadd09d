package ranking

import (
	"fmt"

	apperrors "wrist-ranking-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Board describes one ranked table: which table holds the rows, which column
// splits it into partitions, and how many entries a partition may hold.
type Board struct {
	Table    string // e.g. "players"
	Column   string // partition discriminator column, e.g. "hand"
	Capacity int    // 0 means uncapped
}

// Partition identifies one ordered list inside a board, e.g.
// (region 7, hand=left).
type Partition struct {
	RegionID uuid.UUID
	Value    string
}

// Ledger maintains the dense 1..N rank_position sequence of a board's
// partitions. All methods expect to run inside the caller's transaction;
// a failure leaves the transaction to roll back, so a partition is never
// observable with gaps or duplicates between transactions.
type Ledger struct {
	board Board
}

// NewLedger creates a ledger for a board
func NewLedger(board Board) *Ledger {
	return &Ledger{board: board}
}

func (l *Ledger) partitionScope(tx *gorm.DB, p Partition) *gorm.DB {
	return tx.Table(l.board.Table).
		Where("region_id = ? AND "+l.board.Column+" = ?", p.RegionID, p.Value)
}

// NextPosition returns the position a new row should be appended at: one
// past the current maximum, or 1 for an empty partition. Returns
// ErrRankingFull when the board is capped and the partition is at capacity.
func (l *Ledger) NextPosition(tx *gorm.DB, p Partition) (int, error) {
	var maxPos int
	err := l.partitionScope(tx, p).
		Select("COALESCE(MAX(rank_position), 0)").
		Scan(&maxPos).Error
	if err != nil {
		return 0, fmt.Errorf("max rank position: %w", err)
	}

	next := maxPos + 1
	if l.board.Capacity > 0 && next > l.board.Capacity {
		return 0, apperrors.ErrRankingFull
	}
	return next, nil
}

// Compact closes the gap left at the vacated position: every row ranked
// below it moves up by exactly one, in ascending order so each update lands
// on a position that was freed by the previous one and the unique index is
// never violated mid-shift.
func (l *Ledger) Compact(tx *gorm.DB, p Partition, vacated int) error {
	type rankedRow struct {
		ID           uuid.UUID
		RankPosition int
	}

	var rows []rankedRow
	err := l.partitionScope(tx, p).
		Select("id, rank_position").
		Where("rank_position > ?", vacated).
		Order("rank_position ASC").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("load rows to compact: %w", err)
	}

	for _, row := range rows {
		err := tx.Table(l.board.Table).
			Where("id = ?", row.ID).
			Update("rank_position", row.RankPosition-1).Error
		if err != nil {
			return fmt.Errorf("shift rank position: %w", err)
		}
	}
	return nil
}

// Reorder assigns position i+1 to orderedIDs[i]. The ids must be exactly the
// partition's current live rows; anything else (wrong length, duplicate,
// foreign id) is rejected with ErrInvalidPermutation before a single write.
//
// Positions are written in two passes, staging every row at the negative of
// its target first. A direct single-pass assignment could move a row onto a
// position another row still occupies, which the eager unique index on
// (region, discriminator, rank_position) rejects; no position is negative
// outside this transaction, so the staging pass is always collision-free.
func (l *Ledger) Reorder(tx *gorm.DB, p Partition, orderedIDs []uuid.UUID) error {
	var currentIDs []uuid.UUID
	if err := l.partitionScope(tx, p).Pluck("id", &currentIDs).Error; err != nil {
		return fmt.Errorf("load current ids: %w", err)
	}

	if len(orderedIDs) != len(currentIDs) {
		return apperrors.ErrInvalidPermutation
	}
	current := make(map[uuid.UUID]bool, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = true
	}
	seen := make(map[uuid.UUID]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !current[id] || seen[id] {
			return apperrors.ErrInvalidPermutation
		}
		seen[id] = true
	}

	// Pass 1: stage at negative positions
	for i, id := range orderedIDs {
		err := l.partitionScope(tx, p).
			Where("id = ?", id).
			Update("rank_position", -(i + 1)).Error
		if err != nil {
			return fmt.Errorf("stage rank position: %w", err)
		}
	}

	// Pass 2: final positions
	for i, id := range orderedIDs {
		err := l.partitionScope(tx, p).
			Where("id = ?", id).
			Update("rank_position", i+1).Error
		if err != nil {
			return fmt.Errorf("assign rank position: %w", err)
		}
	}
	return nil
}
