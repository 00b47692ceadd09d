package models

import (
	"github.com/google/uuid"
)

// Hand represents which arm a player is ranked for
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
)

// IsValid reports whether the hand value is one of the known enums
func (h Hand) IsValid() bool {
	return h == HandLeft || h == HandRight
}

// MaxPlayerRank is the capacity of each (region, hand) player board.
const MaxPlayerRank = 30

// Player is a ranked entry on a regional wrist-strength board. Within one
// (region, hand) board the rank positions of live rows are always the dense
// sequence 1..N, enforced by the unique index and the ledger operations.
type Player struct {
	BaseModel
	RegionID     uuid.UUID `json:"region_id" gorm:"type:uuid;not null;uniqueIndex:idx_players_region_hand_rank" validate:"required"`
	Hand         Hand      `json:"hand" gorm:"type:varchar(10);not null;uniqueIndex:idx_players_region_hand_rank" validate:"required,oneof=left right"`
	RankPosition int       `json:"rank_position" gorm:"not null;uniqueIndex:idx_players_region_hand_rank"`
	Name         string    `json:"name" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	Avatar       string    `json:"avatar" gorm:"size:255"`
	Power        string    `json:"power" gorm:"size:50"`
	Skill        string    `json:"skill" gorm:"size:100"`

	// Relationships
	Region *Region `json:"region,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
