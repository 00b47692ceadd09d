package repository

import (
	"testing"

	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ContributionMemberRepositoryTestSuite tests the ContributionMemberRepository
type ContributionMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContributionMemberRepository
	notes         *ContributionNoteRepository
	factories     *testutils.FactorySet
	region        *models.Region
}

// SetupSuite runs before all tests in the suite
func (suite *ContributionMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewContributionMemberRepository(suite.baseTestSuite.DB)
	suite.notes = NewContributionNoteRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ContributionMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a region
func (suite *ContributionMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	creator := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(creator).Error)

	suite.region = suite.factories.Region.WithCreator(creator.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.region).Error)
}

// TearDownTest runs after each test
func (suite *ContributionMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithInitialNote tests appending a member with its first note in
// one transaction
func (suite *ContributionMemberRepositoryTestSuite) TestCreateWithInitialNote() {
	member := suite.factories.Member.Create(suite.region.ID, models.BoardTypeResource, 0)
	err := suite.repo.Create(member, "捐赠场地一年")
	suite.NoError(err)
	suite.Equal(1, member.RankPosition)

	notes, err := suite.notes.ListByMember(member.ID)
	suite.NoError(err)
	suite.Require().Len(notes, 1)
	suite.Equal("捐赠场地一年", notes[0].NoteText)
}

// TestCreateWithoutNote tests that an empty note records nothing
func (suite *ContributionMemberRepositoryTestSuite) TestCreateWithoutNote() {
	member := suite.factories.Member.Create(suite.region.ID, models.BoardTypeResource, 0)
	suite.NoError(suite.repo.Create(member, ""))

	notes, err := suite.notes.ListByMember(member.ID)
	suite.NoError(err)
	suite.Empty(notes)
}

// TestBoardsAreUncapped tests that a board accepts more than 30 members
func (suite *ContributionMemberRepositoryTestSuite) TestBoardsAreUncapped() {
	for i := 0; i < 31; i++ {
		member := suite.factories.Member.Create(suite.region.ID, models.BoardTypeHonor, 0)
		suite.Require().NoError(suite.repo.Create(member, ""))
	}

	members, err := suite.repo.ListByBoard(suite.region.ID, models.BoardTypeHonor)
	suite.NoError(err)
	suite.Len(members, 31)
	suite.Equal(31, members[30].RankPosition)
}

// TestBoardTypesAreIndependent tests that resource and honor boards do not
// share positions
func (suite *ContributionMemberRepositoryTestSuite) TestBoardTypesAreIndependent() {
	resource := suite.factories.Member.Create(suite.region.ID, models.BoardTypeResource, 0)
	suite.NoError(suite.repo.Create(resource, ""))

	honor := suite.factories.Member.Create(suite.region.ID, models.BoardTypeHonor, 0)
	suite.NoError(suite.repo.Create(honor, ""))

	suite.Equal(1, resource.RankPosition)
	suite.Equal(1, honor.RankPosition)
}

// TestListByBoardPreloadsNotes tests that listing carries note history in
// chronological order
func (suite *ContributionMemberRepositoryTestSuite) TestListByBoardPreloadsNotes() {
	member := suite.factories.Member.Create(suite.region.ID, models.BoardTypeResource, 0)
	suite.Require().NoError(suite.repo.Create(member, "第一条"))
	suite.Require().NoError(suite.notes.Create(&models.ContributionNote{
		MemberID: member.ID,
		NoteText: "第二条",
	}))

	members, err := suite.repo.ListByBoard(suite.region.ID, models.BoardTypeResource)
	suite.NoError(err)
	suite.Require().Len(members, 1)
	suite.Require().Len(members[0].Notes, 2)
	suite.Equal("第一条", members[0].Notes[0].NoteText)
	suite.Equal("第二条", members[0].Notes[1].NoteText)
}

// TestDeleteAndCompact tests gap closing and note cascade
func (suite *ContributionMemberRepositoryTestSuite) TestDeleteAndCompact() {
	members := make([]*models.ContributionMember, 3)
	for i := range members {
		members[i] = suite.factories.Member.Create(suite.region.ID, models.BoardTypeResource, 0)
		suite.Require().NoError(suite.repo.Create(members[i], "note"))
	}

	_, err := suite.repo.DeleteAndCompact(suite.region.ID, members[0].ID)
	suite.NoError(err)

	remaining, err := suite.repo.ListByBoard(suite.region.ID, models.BoardTypeResource)
	suite.NoError(err)
	suite.Require().Len(remaining, 2)
	suite.Equal(members[1].ID, remaining[0].ID)
	suite.Equal(1, remaining[0].RankPosition)
	suite.Equal(members[2].ID, remaining[1].ID)
	suite.Equal(2, remaining[1].RankPosition)

	// Notes of the deleted member are gone
	notes, err := suite.notes.ListByMember(members[0].ID)
	suite.NoError(err)
	suite.Empty(notes)
}

// TestReorder tests a full permutation of one board
func (suite *ContributionMemberRepositoryTestSuite) TestReorder() {
	members := make([]*models.ContributionMember, 3)
	for i := range members {
		members[i] = suite.factories.Member.Create(suite.region.ID, models.BoardTypeHonor, 0)
		suite.Require().NoError(suite.repo.Create(members[i], ""))
	}

	err := suite.repo.Reorder(suite.region.ID, models.BoardTypeHonor,
		[]uuid.UUID{members[2].ID, members[0].ID, members[1].ID})
	suite.NoError(err)

	got, err := suite.repo.ListByBoard(suite.region.ID, models.BoardTypeHonor)
	suite.NoError(err)
	suite.Equal(members[2].ID, got[0].ID)
	suite.Equal(members[0].ID, got[1].ID)
	suite.Equal(members[1].ID, got[2].ID)
}

// TestReorderRejectsForeignBoard tests ids from the other board type
func (suite *ContributionMemberRepositoryTestSuite) TestReorderRejectsForeignBoard() {
	resource := suite.factories.Member.Create(suite.region.ID, models.BoardTypeResource, 0)
	suite.Require().NoError(suite.repo.Create(resource, ""))

	honor := suite.factories.Member.Create(suite.region.ID, models.BoardTypeHonor, 0)
	suite.Require().NoError(suite.repo.Create(honor, ""))

	err := suite.repo.Reorder(suite.region.ID, models.BoardTypeResource, []uuid.UUID{honor.ID})
	suite.ErrorIs(err, apperrors.ErrInvalidPermutation)
}

// TestUpdateNotFound tests editing a member absent from the region
func (suite *ContributionMemberRepositoryTestSuite) TestUpdateNotFound() {
	err := suite.repo.Update(suite.region.ID, uuid.New(), "name", "", "")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestContributionMemberRepositoryTestSuite runs the test suite
func TestContributionMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContributionMemberRepositoryTestSuite))
}
