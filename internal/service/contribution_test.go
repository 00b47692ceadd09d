package service_test

import (
	"testing"

	"wrist-ranking-backend/internal/authz"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/mocks"
	"wrist-ranking-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ContributionServiceTestSuite defines the test suite for ContributionService
type ContributionServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockMemberRepo      *mocks.MockContributionMemberRepositoryInterface
	mockAdminRepo       *mocks.MockRegionAdminRepositoryInterface
	mockUserRepo        *mocks.MockUserRepositoryInterface
	mockStore           *mocks.MockStore
	contributionService *service.ContributionService
	validator           *validator.Validate

	callerID uuid.UUID
	regionID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ContributionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockContributionMemberRepositoryInterface(suite.ctrl)
	suite.mockAdminRepo = mocks.NewMockRegionAdminRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.validator = validator.New()

	gate := authz.NewGate(suite.mockAdminRepo, suite.mockUserRepo)
	suite.contributionService = service.NewContributionService(suite.mockMemberRepo, gate, suite.mockStore, suite.validator)

	suite.callerID = uuid.New()
	suite.regionID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ContributionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectAdmin makes the caller an admin of the region
func (suite *ContributionServiceTestSuite) expectAdmin() {
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, suite.callerID).
		Return(&models.RegionAdmin{RegionID: suite.regionID, UserID: suite.callerID, Role: models.AdminRoleAdmin}, nil).
		Times(1)
}

// TestList tests listing a board with note history and the latest note
func (suite *ContributionServiceTestSuite) TestList() {
	suite.mockMemberRepo.EXPECT().
		ListByBoard(suite.regionID, models.BoardTypeResource).
		Return([]models.ContributionMember{
			{
				RegionID:     suite.regionID,
				Type:         models.BoardTypeResource,
				RankPosition: 1,
				Name:         "老会员",
				Notes: []models.ContributionNote{
					{NoteText: "捐赠水泥一批"},
					{NoteText: "修缮擂台"},
				},
			},
		}, nil).
		Times(1)

	responses, err := suite.contributionService.List(suite.regionID, models.BoardTypeResource)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Len(suite.T(), responses[0].Notes, 2)
	assert.Equal(suite.T(), "修缮擂台", responses[0].LatestNote)
}

// TestListInvalidType tests listing with an unknown board type
func (suite *ContributionServiceTestSuite) TestListInvalidType() {
	responses, err := suite.contributionService.List(suite.regionID, models.BoardType("money"))

	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidBoardType)
}

// TestCreateWithInitialNote tests appending a member with a first note
func (suite *ContributionServiceTestSuite) TestCreateWithInitialNote() {
	suite.expectAdmin()

	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any(), "捐赠水泥一批").
		DoAndReturn(func(member *models.ContributionMember, _ string) error {
			assert.Equal(suite.T(), suite.regionID, member.RegionID)
			assert.Equal(suite.T(), models.BoardTypeHonor, member.Type)
			member.ID = uuid.New()
			member.RankPosition = 1
			return nil
		}).
		Times(1)

	response, err := suite.contributionService.Create(suite.callerID, suite.regionID, &service.CreateMemberRequest{
		Type: models.BoardTypeHonor,
		Name: "老会员",
		Note: " 捐赠水泥一批 ",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.RankPosition)
}

// TestCreateForbidden tests appending without authority
func (suite *ContributionServiceTestSuite) TestCreateForbidden() {
	suite.mockAdminRepo.EXPECT().
		Get(suite.regionID, suite.callerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(suite.callerID).
		Return(&models.User{BaseModel: models.BaseModel{ID: suite.callerID}}, nil).
		Times(1)

	response, err := suite.contributionService.Create(suite.callerID, suite.regionID, &service.CreateMemberRequest{
		Type: models.BoardTypeResource,
		Name: "老会员",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// TestCreateInvalidType tests appending to an unknown board type
func (suite *ContributionServiceTestSuite) TestCreateInvalidType() {
	suite.expectAdmin()

	response, err := suite.contributionService.Create(suite.callerID, suite.regionID, &service.CreateMemberRequest{
		Type: models.BoardType("money"),
		Name: "老会员",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidBoardType)
}

// TestUpdateNotFound tests editing a member that does not exist
func (suite *ContributionServiceTestSuite) TestUpdateNotFound() {
	suite.expectAdmin()

	memberID := uuid.New()
	suite.mockMemberRepo.EXPECT().
		Update(suite.regionID, memberID, "老会员", "", "").
		Return(gorm.ErrRecordNotFound).
		Times(1)

	err := suite.contributionService.Update(suite.callerID, suite.regionID, memberID, &service.UpdateMemberRequest{
		Name: "老会员",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

// TestDelete tests removing a member and cleaning up its avatar file
func (suite *ContributionServiceTestSuite) TestDelete() {
	suite.expectAdmin()

	memberID := uuid.New()
	suite.mockMemberRepo.EXPECT().
		DeleteAndCompact(suite.regionID, memberID).
		Return(&models.ContributionMember{
			BaseModel: models.BaseModel{ID: memberID},
			Avatar:    "/uploads/member-avatar.png",
		}, nil).
		Times(1)

	suite.mockStore.EXPECT().
		Delete("/uploads/member-avatar.png").
		Times(1)

	err := suite.contributionService.Delete(suite.callerID, suite.regionID, memberID)

	assert.NoError(suite.T(), err)
}

// TestReorderInvalidPermutation tests reordering with a bad id set
func (suite *ContributionServiceTestSuite) TestReorderInvalidPermutation() {
	suite.expectAdmin()

	orderedIDs := []uuid.UUID{uuid.New()}
	suite.mockMemberRepo.EXPECT().
		Reorder(suite.regionID, models.BoardTypeResource, orderedIDs).
		Return(apperrors.ErrInvalidPermutation).
		Times(1)

	err := suite.contributionService.Reorder(suite.callerID, suite.regionID, &service.ReorderMembersRequest{
		Type:       models.BoardTypeResource,
		OrderedIDs: orderedIDs,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPermutation)
}

// TestUploadAvatar tests replacing an avatar and deleting the old file
func (suite *ContributionServiceTestSuite) TestUploadAvatar() {
	suite.expectAdmin()

	memberID := uuid.New()
	file := newTestFileHeader("avatar.png")

	suite.mockStore.EXPECT().
		Save(file).
		Return("/uploads/new-avatar.png", nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		UpdateAvatar(suite.regionID, memberID, "/uploads/new-avatar.png").
		Return("/uploads/old-avatar.png", nil).
		Times(1)
	suite.mockStore.EXPECT().
		Delete("/uploads/old-avatar.png").
		Times(1)

	avatar, err := suite.contributionService.UploadAvatar(suite.callerID, suite.regionID, memberID, file)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/uploads/new-avatar.png", avatar)
}

// TestContributionServiceTestSuite runs the test suite
func TestContributionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContributionServiceTestSuite))
}
