package models

import (
	"github.com/google/uuid"
)

// AdminRole represents the authority of a user over a region
type AdminRole string

const (
	AdminRoleOwner AdminRole = "owner"
	AdminRoleAdmin AdminRole = "admin"
)

// RegionAdmin links a user to a region with a role. Every region has exactly
// one owner entry, created together with the region; it cannot be removed.
type RegionAdmin struct {
	BaseModel
	RegionID uuid.UUID `json:"region_id" gorm:"type:uuid;not null;uniqueIndex:idx_region_admins_region_user" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_region_admins_region_user" validate:"required"`
	Role     AdminRole `json:"role" gorm:"type:varchar(20);not null;default:'admin'" validate:"required,oneof=owner admin"`

	// Relationships
	Region *Region `json:"region,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RegionAdmin
func (RegionAdmin) TableName() string {
	return "region_admins"
}
