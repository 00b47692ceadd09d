package models

// User represents a registered account. Accounts with the super admin flag
// have owner and admin authority over every region.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Nickname     string `json:"nickname" gorm:"size:50"`
	IsSuperAdmin bool   `json:"is_super_admin" gorm:"default:false"`

	// Relationships
	CreatedRegions []Region `json:"created_regions,omitempty" gorm:"foreignKey:CreatorID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
