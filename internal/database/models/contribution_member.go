package models

import (
	"github.com/google/uuid"
)

// BoardType represents which contribution board a member is ranked on
type BoardType string

const (
	BoardTypeResource BoardType = "resource"
	BoardTypeHonor    BoardType = "honor"
)

// IsValid reports whether the board type is one of the known enums
func (t BoardType) IsValid() bool {
	return t == BoardTypeResource || t == BoardTypeHonor
}

// ContributionMember is a ranked entry on a regional contribution or honor
// board. Boards are uncapped but keep the same dense 1..N rank sequence as
// player boards.
type ContributionMember struct {
	BaseModel
	RegionID     uuid.UUID `json:"region_id" gorm:"type:uuid;not null;uniqueIndex:idx_contrib_region_type_rank" validate:"required"`
	Type         BoardType `json:"type" gorm:"type:varchar(20);not null;uniqueIndex:idx_contrib_region_type_rank" validate:"required,oneof=resource honor"`
	RankPosition int       `json:"rank_position" gorm:"not null;uniqueIndex:idx_contrib_region_type_rank"`
	Name         string    `json:"name" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	Avatar       string    `json:"avatar" gorm:"size:255"`
	Value        string    `json:"value" gorm:"size:100"`
	Total        string    `json:"total" gorm:"size:100"`

	// Relationships
	Region *Region            `json:"region,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
	Notes  []ContributionNote `json:"notes,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ContributionMember
func (ContributionMember) TableName() string {
	return "contribution_members"
}
