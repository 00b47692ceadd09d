package models

import (
	"github.com/google/uuid"
)

// ContributionNote is one entry in a contribution member's append-only note
// history. The latest note is the most recently created one.
type ContributionNote struct {
	BaseModel
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index" validate:"required"`
	NoteText string    `json:"note_text" gorm:"type:text;not null" validate:"required"`

	// Relationships
	Member *ContributionMember `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ContributionNote
func (ContributionNote) TableName() string {
	return "contribution_notes"
}
