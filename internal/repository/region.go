package repository

import (
	"wrist-ranking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegionSummary is a region row enriched with its creator's nickname and the
// number of ranked entries it holds
type RegionSummary struct {
	models.Region
	CreatorName  string `json:"creator_name"`
	PlayerCount  int64  `json:"player_count"`
	ContribCount int64  `json:"contrib_count"`
}

// RegionRepository handles database operations for regions
type RegionRepository struct {
	db *gorm.DB
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *gorm.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// Create creates a region together with its owner admin entry in one
// transaction, so a region is never observable without an owner.
func (r *RegionRepository) Create(region *models.Region) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(region).Error; err != nil {
			return err
		}
		owner := &models.RegionAdmin{
			RegionID: region.ID,
			UserID:   region.CreatorID,
			Role:     models.AdminRoleOwner,
		}
		return tx.Create(owner).Error
	})
}

// GetByID retrieves a region by ID
func (r *RegionRepository) GetByID(id uuid.UUID) (*models.Region, error) {
	var region models.Region
	err := r.db.First(&region, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &region, nil
}

// GetByName retrieves a region by its unique name
func (r *RegionRepository) GetByName(name string) (*models.Region, error) {
	var region models.Region
	err := r.db.First(&region, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &region, nil
}

// GetSummary retrieves one region with its creator nickname
func (r *RegionRepository) GetSummary(id uuid.UUID) (*RegionSummary, error) {
	var summary RegionSummary
	err := r.db.Model(&models.Region{}).
		Select("regions.*, u.nickname AS creator_name").
		Joins("LEFT JOIN users u ON regions.creator_id = u.id").
		Where("regions.id = ?", id).
		First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// List retrieves regions newest first, optionally filtered by province and a
// keyword matched against name or province, each with creator nickname and
// entry counts
func (r *RegionRepository) List(province, keyword string) ([]RegionSummary, error) {
	query := r.db.Model(&models.Region{}).
		Select(`regions.*, u.nickname AS creator_name,
			(SELECT COUNT(*) FROM players p WHERE p.region_id = regions.id) AS player_count,
			(SELECT COUNT(*) FROM contribution_members cm WHERE cm.region_id = regions.id) AS contrib_count`).
		Joins("LEFT JOIN users u ON regions.creator_id = u.id")

	if province != "" {
		query = query.Where("regions.province = ?", province)
	}
	if keyword != "" {
		query = query.Where("regions.name ILIKE ? OR regions.province ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	var summaries []RegionSummary
	err := query.Order("regions.created_at DESC").Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// ListProvinces retrieves the distinct non-empty provinces, sorted
func (r *RegionRepository) ListProvinces() ([]string, error) {
	var provinces []string
	err := r.db.Model(&models.Region{}).
		Distinct("province").
		Where("province != ''").
		Order("province").
		Pluck("province", &provinces).Error
	if err != nil {
		return nil, err
	}
	return provinces, nil
}

// Update updates a region's metadata
func (r *RegionRepository) Update(region *models.Region) error {
	return r.db.Save(region).Error
}

// UpdateCover replaces a region's cover image path and returns the previous
// one so the caller can clean the old file up
func (r *RegionRepository) UpdateCover(id uuid.UUID, coverPath string) (string, error) {
	var region models.Region
	if err := r.db.First(&region, "id = ?", id).Error; err != nil {
		return "", err
	}
	old := region.CoverImage
	err := r.db.Model(&models.Region{}).
		Where("id = ?", id).
		Update("cover_image", coverPath).Error
	if err != nil {
		return "", err
	}
	return old, nil
}

// DeleteCascade deletes a region and returns the public paths of every file
// the region owned (cover plus player and member avatars). Rows cascade via
// foreign keys inside one transaction; the returned paths are the caller's
// to delete best-effort after commit.
func (r *RegionRepository) DeleteCascade(id uuid.UUID) ([]string, error) {
	var files []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var region models.Region
		if err := tx.First(&region, "id = ?", id).Error; err != nil {
			return err
		}
		if region.CoverImage != "" {
			files = append(files, region.CoverImage)
		}

		var playerAvatars []string
		if err := tx.Model(&models.Player{}).
			Where("region_id = ? AND avatar != ''", id).
			Pluck("avatar", &playerAvatars).Error; err != nil {
			return err
		}
		files = append(files, playerAvatars...)

		var memberAvatars []string
		if err := tx.Model(&models.ContributionMember{}).
			Where("region_id = ? AND avatar != ''", id).
			Pluck("avatar", &memberAvatars).Error; err != nil {
			return err
		}
		files = append(files, memberAvatars...)

		return tx.Delete(&models.Region{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
