package models

import (
	"github.com/google/uuid"
)

// Region represents one ranking board area, e.g. a city scene. A region owns
// its players, contribution members and admin roster; deleting the region
// cascades to all of them.
type Region struct {
	BaseModel
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Province    string    `json:"province" gorm:"size:50"`
	Description string    `json:"description" gorm:"type:text"`
	CoverImage  string    `json:"cover_image" gorm:"size:255"`
	CreatorID   uuid.UUID `json:"creator_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Creator             *User                `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Admins              []RegionAdmin        `json:"admins,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
	Players             []Player             `json:"players,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
	ContributionMembers []ContributionMember `json:"contribution_members,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Region
func (Region) TableName() string {
	return "regions"
}
