package service

import (
	"mime/multipart"

	"wrist-ranking-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines account operations for handler dependency
// injection
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	Verify(userID uuid.UUID) (*UserResponse, error)
	ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error
}

// RegionServiceInterface defines region catalog operations
type RegionServiceInterface interface {
	List(province, keyword string) ([]RegionResponse, error)
	Provinces() ([]string, error)
	Get(id uuid.UUID, callerID *uuid.UUID) (*RegionDetailResponse, error)
	Create(callerID uuid.UUID, req *SaveRegionRequest) (uuid.UUID, error)
	Update(callerID, regionID uuid.UUID, req *SaveRegionRequest) error
	Delete(callerID, regionID uuid.UUID) error
	UploadCover(callerID, regionID uuid.UUID, file *multipart.FileHeader) (string, error)
}

// RegionAdminServiceInterface defines region roster operations
type RegionAdminServiceInterface interface {
	List(regionID uuid.UUID) ([]AdminResponse, error)
	Add(callerID, regionID uuid.UUID, req *AddAdminRequest) error
	Remove(callerID, regionID, targetUserID uuid.UUID) error
}

// PlayerServiceInterface defines ranked player board operations
type PlayerServiceInterface interface {
	List(regionID uuid.UUID, hand models.Hand) ([]PlayerResponse, error)
	Create(callerID, regionID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error)
	Update(callerID, regionID, playerID uuid.UUID, req *UpdatePlayerRequest) error
	Delete(callerID, regionID, playerID uuid.UUID) error
	Reorder(callerID, regionID uuid.UUID, req *ReorderPlayersRequest) error
	UploadAvatar(callerID, regionID, playerID uuid.UUID, file *multipart.FileHeader) (string, error)
}

// ContributionServiceInterface defines contribution board operations
type ContributionServiceInterface interface {
	List(regionID uuid.UUID, boardType models.BoardType) ([]MemberResponse, error)
	Create(callerID, regionID uuid.UUID, req *CreateMemberRequest) (*MemberResponse, error)
	Update(callerID, regionID, memberID uuid.UUID, req *UpdateMemberRequest) error
	Delete(callerID, regionID, memberID uuid.UUID) error
	Reorder(callerID, regionID uuid.UUID, req *ReorderMembersRequest) error
	UploadAvatar(callerID, regionID, memberID uuid.UUID, file *multipart.FileHeader) (string, error)
}

// NoteServiceInterface defines contribution note history operations
type NoteServiceInterface interface {
	List(memberID uuid.UUID) ([]NoteResponse, error)
	Add(callerID, memberID uuid.UUID, req *NoteTextRequest) (*NoteResponse, error)
	Update(callerID, noteID uuid.UUID, req *NoteTextRequest) error
	Delete(callerID, noteID uuid.UUID) error
}
