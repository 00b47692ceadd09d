package testutils

import (
	"fmt"
	"time"

	"wrist-ranking-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user_" + id.String()[:8],
		PasswordHash: string(hash),
		Nickname:     "Test User",
		IsSuperAdmin: false,
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// SuperAdmin creates a user with the super admin flag set
func (f *UserFactory) SuperAdmin() *models.User {
	user := f.Create()
	user.IsSuperAdmin = true
	return user
}

// RegionFactory provides methods to create test Region data
type RegionFactory struct{}

// NewRegionFactory creates a new RegionFactory
func NewRegionFactory() *RegionFactory {
	return &RegionFactory{}
}

// Create creates a test Region with default values
func (f *RegionFactory) Create() *models.Region {
	id := uuid.New()
	return &models.Region{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Region " + id.String()[:8],
		Province:    "广东",
		Description: "A test region",
		CreatorID:   uuid.New(),
	}
}

// WithCreator sets the creator ID for the region
func (f *RegionFactory) WithCreator(creatorID uuid.UUID) *models.Region {
	region := f.Create()
	region.CreatorID = creatorID
	return region
}

// WithProvince sets a custom province
func (f *RegionFactory) WithProvince(province string) *models.Region {
	region := f.Create()
	region.Province = province
	return region
}

// RegionAdminFactory provides methods to create test RegionAdmin data
type RegionAdminFactory struct{}

// NewRegionAdminFactory creates a new RegionAdminFactory
func NewRegionAdminFactory() *RegionAdminFactory {
	return &RegionAdminFactory{}
}

// Create creates an admin link between a region and a user
func (f *RegionAdminFactory) Create(regionID, userID uuid.UUID, role models.AdminRole) *models.RegionAdmin {
	return &models.RegionAdmin{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RegionID: regionID,
		UserID:   userID,
		Role:     role,
	}
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a ranked player on the given board
func (f *PlayerFactory) Create(regionID uuid.UUID, hand models.Hand, rank int) *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RegionID:     regionID,
		Hand:         hand,
		RankPosition: rank,
		Name:         fmt.Sprintf("Player %d", rank),
		Power:        "120kg",
		Skill:        "top roll",
	}
}

// ContributionMemberFactory provides methods to create test ContributionMember data
type ContributionMemberFactory struct{}

// NewContributionMemberFactory creates a new ContributionMemberFactory
func NewContributionMemberFactory() *ContributionMemberFactory {
	return &ContributionMemberFactory{}
}

// Create creates a ranked member on the given board
func (f *ContributionMemberFactory) Create(regionID uuid.UUID, boardType models.BoardType, rank int) *models.ContributionMember {
	return &models.ContributionMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RegionID:     regionID,
		Type:         boardType,
		RankPosition: rank,
		Name:         fmt.Sprintf("Member %d", rank),
		Value:        "500",
		Total:        "1200",
	}
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	User   *UserFactory
	Region *RegionFactory
	Admin  *RegionAdminFactory
	Player *PlayerFactory
	Member *ContributionMemberFactory
}

// NewFactorySet creates a FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:   NewUserFactory(),
		Region: NewRegionFactory(),
		Admin:  NewRegionAdminFactory(),
		Player: NewPlayerFactory(),
		Member: NewContributionMemberFactory(),
	}
}
