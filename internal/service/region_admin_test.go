package service_test

import (
	"testing"
	"time"

	"wrist-ranking-backend/internal/authz"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/mocks"
	"wrist-ranking-backend/internal/repository"
	"wrist-ranking-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RegionAdminServiceTestSuite defines the test suite for RegionAdminService
type RegionAdminServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAdminRepo *mocks.MockRegionAdminRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	adminService  *service.RegionAdminService
	validator     *validator.Validate

	ownerID  uuid.UUID
	regionID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RegionAdminServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAdminRepo = mocks.NewMockRegionAdminRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	gate := authz.NewGate(suite.mockAdminRepo, suite.mockUserRepo)
	suite.adminService = service.NewRegionAdminService(suite.mockAdminRepo, suite.mockUserRepo, gate, suite.validator)

	suite.ownerID = uuid.New()
	suite.regionID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *RegionAdminServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectOwner makes the caller the owner of the region
func (suite *RegionAdminServiceTestSuite) expectOwner(callerID uuid.UUID) {
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, callerID).
		Return(&models.RegionAdmin{RegionID: suite.regionID, UserID: callerID, Role: models.AdminRoleOwner}, nil).
		Times(1)
}

// expectPlainAdmin makes the caller a non-owner admin of the region
func (suite *RegionAdminServiceTestSuite) expectPlainAdmin(callerID uuid.UUID) {
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, callerID).
		Return(&models.RegionAdmin{RegionID: suite.regionID, UserID: callerID, Role: models.AdminRoleAdmin}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(callerID).
		Return(&models.User{BaseModel: models.BaseModel{ID: callerID}}, nil).
		Times(1)
}

// TestList tests listing the admin roster
func (suite *RegionAdminServiceTestSuite) TestList() {
	userID := uuid.New()
	suite.mockAdminRepo.EXPECT().
		ListByRegion(suite.regionID).
		Return([]repository.AdminEntry{
			{
				RegionAdmin: models.RegionAdmin{
					BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
					RegionID:  suite.regionID,
					UserID:    userID,
					Role:      models.AdminRoleOwner,
				},
				Username: "zhangwei",
				Nickname: "阿伟",
			},
		}, nil).
		Times(1)

	responses, err := suite.adminService.List(suite.regionID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), models.AdminRoleOwner, responses[0].Role)
	assert.Equal(suite.T(), "zhangwei", responses[0].Username)
	assert.Equal(suite.T(), userID, responses[0].UserID)
}

// TestAdd tests granting the admin role by username
func (suite *RegionAdminServiceTestSuite) TestAdd() {
	suite.expectOwner(suite.ownerID)

	newAdminID := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByUsername("liuyang").
		Return(&models.User{BaseModel: models.BaseModel{ID: newAdminID}, Username: "liuyang"}, nil).
		Times(1)

	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, newAdminID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockAdminRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(admin *models.RegionAdmin) error {
			assert.Equal(suite.T(), suite.regionID, admin.RegionID)
			assert.Equal(suite.T(), newAdminID, admin.UserID)
			assert.Equal(suite.T(), models.AdminRoleAdmin, admin.Role)
			return nil
		}).
		Times(1)

	err := suite.adminService.Add(suite.ownerID, suite.regionID, &service.AddAdminRequest{Username: "liuyang"})

	assert.NoError(suite.T(), err)
}

// TestAddRequiresOwner tests that a plain admin may not grow the roster
func (suite *RegionAdminServiceTestSuite) TestAddRequiresOwner() {
	callerID := uuid.New()
	suite.expectPlainAdmin(callerID)

	err := suite.adminService.Add(callerID, suite.regionID, &service.AddAdminRequest{Username: "liuyang"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerOnly)
}

// TestAddUnknownUser tests granting the role to a username that does not exist
func (suite *RegionAdminServiceTestSuite) TestAddUnknownUser() {
	suite.expectOwner(suite.ownerID)

	suite.mockUserRepo.EXPECT().
		GetByUsername("nobody").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.adminService.Add(suite.ownerID, suite.regionID, &service.AddAdminRequest{Username: "nobody"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestAddExistingAdmin tests granting the role to an existing admin
func (suite *RegionAdminServiceTestSuite) TestAddExistingAdmin() {
	suite.expectOwner(suite.ownerID)

	existingID := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByUsername("liuyang").
		Return(&models.User{BaseModel: models.BaseModel{ID: existingID}, Username: "liuyang"}, nil).
		Times(1)

	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, existingID).
		Return(&models.RegionAdmin{RegionID: suite.regionID, UserID: existingID, Role: models.AdminRoleAdmin}, nil).
		Times(1)

	err := suite.adminService.Add(suite.ownerID, suite.regionID, &service.AddAdminRequest{Username: "liuyang"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminExists)
}

// TestRemove tests revoking the admin role
func (suite *RegionAdminServiceTestSuite) TestRemove() {
	suite.expectOwner(suite.ownerID)

	targetID := uuid.New()
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, targetID).
		Return(&models.RegionAdmin{RegionID: suite.regionID, UserID: targetID, Role: models.AdminRoleAdmin}, nil).
		Times(1)

	suite.mockAdminRepo.EXPECT().
		Delete(suite.regionID, targetID).
		Return(nil).
		Times(1)

	err := suite.adminService.Remove(suite.ownerID, suite.regionID, targetID)

	assert.NoError(suite.T(), err)
}

// TestRemoveOwnerEntry tests that the owner entry can never be removed
func (suite *RegionAdminServiceTestSuite) TestRemoveOwnerEntry() {
	suite.expectOwner(suite.ownerID)

	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, suite.ownerID).
		Return(&models.RegionAdmin{RegionID: suite.regionID, UserID: suite.ownerID, Role: models.AdminRoleOwner}, nil).
		Times(1)

	err := suite.adminService.Remove(suite.ownerID, suite.regionID, suite.ownerID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCannotRemoveOwner)
}

// TestRemoveNotAnAdmin tests revoking a role the target never held
func (suite *RegionAdminServiceTestSuite) TestRemoveNotAnAdmin() {
	suite.expectOwner(suite.ownerID)

	targetID := uuid.New()
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, targetID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.adminService.Remove(suite.ownerID, suite.regionID, targetID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminNotFound)
}

// TestSuperAdminMayAdminister tests that a super admin passes the owner gate
func (suite *RegionAdminServiceTestSuite) TestSuperAdminMayAdminister() {
	superID := uuid.New()
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, superID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(superID).
		Return(&models.User{BaseModel: models.BaseModel{ID: superID}, IsSuperAdmin: true}, nil).
		Times(1)

	targetID := uuid.New()
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, targetID).
		Return(&models.RegionAdmin{RegionID: suite.regionID, UserID: targetID, Role: models.AdminRoleAdmin}, nil).
		Times(1)
	suite.mockAdminRepo.EXPECT().
		Delete(suite.regionID, targetID).
		Return(nil).
		Times(1)

	err := suite.adminService.Remove(superID, suite.regionID, targetID)

	assert.NoError(suite.T(), err)
}

// TestRegionAdminServiceTestSuite runs the test suite
func TestRegionAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegionAdminServiceTestSuite))
}
