package repository

import (
	"wrist-ranking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminEntry is a region admin row enriched with the user's account details
type AdminEntry struct {
	models.RegionAdmin
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

// RegionAdminRepository handles database operations for region admin links
type RegionAdminRepository struct {
	db *gorm.DB
}

// NewRegionAdminRepository creates a new region admin repository
func NewRegionAdminRepository(db *gorm.DB) *RegionAdminRepository {
	return &RegionAdminRepository{db: db}
}

// Create adds an admin link
func (r *RegionAdminRepository) Create(admin *models.RegionAdmin) error {
	return r.db.Create(admin).Error
}

// Get retrieves the admin link for a (region, user) pair
func (r *RegionAdminRepository) Get(regionID, userID uuid.UUID) (*models.RegionAdmin, error) {
	var admin models.RegionAdmin
	err := r.db.First(&admin, "region_id = ? AND user_id = ?", regionID, userID).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListByRegion retrieves a region's admin roster, owner first then by
// seniority, with each user's account details
func (r *RegionAdminRepository) ListByRegion(regionID uuid.UUID) ([]AdminEntry, error) {
	var entries []AdminEntry
	err := r.db.Model(&models.RegionAdmin{}).
		Select("region_admins.*, u.username, u.nickname").
		Joins("LEFT JOIN users u ON region_admins.user_id = u.id").
		Where("region_admins.region_id = ?", regionID).
		Order("region_admins.role DESC, region_admins.created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the admin link for a (region, user) pair
func (r *RegionAdminRepository) Delete(regionID, userID uuid.UUID) error {
	return r.db.Delete(&models.RegionAdmin{}, "region_id = ? AND user_id = ?", regionID, userID).Error
}
