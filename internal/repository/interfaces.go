package repository

import (
	"wrist-ranking-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the contract for user persistence
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdatePassword(id uuid.UUID, passwordHash string) error
}

// RegionRepositoryInterface defines the contract for region persistence
type RegionRepositoryInterface interface {
	Create(region *models.Region) error
	GetByID(id uuid.UUID) (*models.Region, error)
	GetByName(name string) (*models.Region, error)
	GetSummary(id uuid.UUID) (*RegionSummary, error)
	List(province, keyword string) ([]RegionSummary, error)
	ListProvinces() ([]string, error)
	Update(region *models.Region) error
	UpdateCover(id uuid.UUID, coverPath string) (string, error)
	DeleteCascade(id uuid.UUID) ([]string, error)
}

// RegionAdminRepositoryInterface defines the contract for admin roster
// persistence
type RegionAdminRepositoryInterface interface {
	Create(admin *models.RegionAdmin) error
	Get(regionID, userID uuid.UUID) (*models.RegionAdmin, error)
	ListByRegion(regionID uuid.UUID) ([]AdminEntry, error)
	Delete(regionID, userID uuid.UUID) error
}

// PlayerRepositoryInterface defines the contract for ranked player
// persistence
type PlayerRepositoryInterface interface {
	ListByBoard(regionID uuid.UUID, hand models.Hand) ([]models.Player, error)
	GetByID(regionID, id uuid.UUID) (*models.Player, error)
	Create(player *models.Player) error
	Update(regionID, id uuid.UUID, name, power, skill string) error
	UpdateAvatar(regionID, id uuid.UUID, avatarPath string) (string, error)
	DeleteAndCompact(regionID, id uuid.UUID) (*models.Player, error)
	Reorder(regionID uuid.UUID, hand models.Hand, orderedIDs []uuid.UUID) error
}

// ContributionMemberRepositoryInterface defines the contract for contribution
// board persistence
type ContributionMemberRepositoryInterface interface {
	ListByBoard(regionID uuid.UUID, boardType models.BoardType) ([]models.ContributionMember, error)
	GetByID(id uuid.UUID) (*models.ContributionMember, error)
	GetInRegion(regionID, id uuid.UUID) (*models.ContributionMember, error)
	Create(member *models.ContributionMember, initialNote string) error
	Update(regionID, id uuid.UUID, name, value, total string) error
	UpdateAvatar(regionID, id uuid.UUID, avatarPath string) (string, error)
	DeleteAndCompact(regionID, id uuid.UUID) (*models.ContributionMember, error)
	Reorder(regionID uuid.UUID, boardType models.BoardType, orderedIDs []uuid.UUID) error
}

// ContributionNoteRepositoryInterface defines the contract for note history
// persistence
type ContributionNoteRepositoryInterface interface {
	Create(note *models.ContributionNote) error
	ListByMember(memberID uuid.UUID) ([]models.ContributionNote, error)
	GetWithMember(id uuid.UUID) (*models.ContributionNote, error)
	Update(id uuid.UUID, text string) error
	Delete(id uuid.UUID) error
}
