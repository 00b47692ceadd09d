package authz

import (
	"errors"
	"fmt"

	"wrist-ranking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminLookup resolves the admin link for a (region, user) pair
type AdminLookup interface {
	Get(regionID, userID uuid.UUID) (*models.RegionAdmin, error)
}

// UserLookup resolves a user account
type UserLookup interface {
	GetByID(id uuid.UUID) (*models.User, error)
}

// Gate answers what authority a user holds over a region. Every check is a
// direct lookup against current persisted state; admin roster changes take
// effect on the next request, so nothing here is cached.
type Gate struct {
	admins AdminLookup
	users  UserLookup
}

// NewGate creates a new authorization gate
func NewGate(admins AdminLookup, users UserLookup) *Gate {
	return &Gate{admins: admins, users: users}
}

// IsRegionAdmin reports whether the user holds any admin role for the region
func (g *Gate) IsRegionAdmin(userID, regionID uuid.UUID) (bool, error) {
	_, err := g.admins.Get(regionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup region admin: %w", err)
	}
	return true, nil
}

// IsRegionOwner reports whether the user holds the owner role for the region
func (g *Gate) IsRegionOwner(userID, regionID uuid.UUID) (bool, error) {
	admin, err := g.admins.Get(regionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup region admin: %w", err)
	}
	return admin.Role == models.AdminRoleOwner, nil
}

// IsSuperAdmin reports whether the user has the super admin flag
func (g *Gate) IsSuperAdmin(userID uuid.UUID) (bool, error) {
	user, err := g.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return user.IsSuperAdmin, nil
}

// CanManageRegion reports whether the user may edit a region's boards and
// metadata: any admin role, or super admin
func (g *Gate) CanManageRegion(userID, regionID uuid.UUID) (bool, error) {
	isAdmin, err := g.IsRegionAdmin(userID, regionID)
	if err != nil {
		return false, err
	}
	if isAdmin {
		return true, nil
	}
	return g.IsSuperAdmin(userID)
}

// CanAdministerRegion reports whether the user may delete a region or manage
// its admin roster: the owner, or super admin
func (g *Gate) CanAdministerRegion(userID, regionID uuid.UUID) (bool, error) {
	isOwner, err := g.IsRegionOwner(userID, regionID)
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}
	return g.IsSuperAdmin(userID)
}
