package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wrist-ranking-backend/internal/api/handlers"
	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/database/models"
	apperrors "wrist-ranking-backend/internal/errors"
	"wrist-ranking-backend/internal/mocks"
	"wrist-ranking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContributionHandlerTestSuite defines the test suite for ContributionHandler
type ContributionHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockContribSvc *mocks.MockContributionServiceInterface
	handler        *handlers.ContributionHandler
	router         *gin.Engine

	userID   uuid.UUID
	regionID uuid.UUID
}

func (suite *ContributionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContribSvc = mocks.NewMockContributionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewContributionHandler(suite.mockContribSvc)
	suite.userID = uuid.New()
	suite.regionID = uuid.New()

	suite.router = gin.New()
	suite.router.GET("/api/regions/:id/contribution/:type", suite.handler.ListMembers)

	authed := suite.router.Group("", func(c *gin.Context) {
		c.Set(auth.ContextUserIDKey, suite.userID)
	})
	authed.POST("/api/regions/:id/contribution", suite.handler.CreateMember)
	authed.PUT("/api/regions/:id/contribution/:memberId", suite.handler.UpdateMember)
	authed.DELETE("/api/regions/:id/contribution/:memberId", suite.handler.DeleteMember)
	authed.POST("/api/regions/:id/contribution/reorder", suite.handler.ReorderMembers)
}

func (suite *ContributionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContributionHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ContributionHandlerTestSuite) TestListMembers_Success() {
	suite.mockContribSvc.EXPECT().
		List(suite.regionID, models.BoardTypeResource).
		Return([]service.MemberResponse{
			{ID: uuid.New(), RankPosition: 1, Name: "老会员", LatestNote: "修缮擂台"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/regions/"+suite.regionID.String()+"/contribution/resource", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.MemberResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "修缮擂台", got[0].LatestNote)
}

func (suite *ContributionHandlerTestSuite) TestListMembers_InvalidType_BadRequest() {
	suite.mockContribSvc.EXPECT().
		List(suite.regionID, models.BoardType("money")).
		Return(nil, apperrors.ErrInvalidBoardType)

	req := httptest.NewRequest(http.MethodGet,
		"/api/regions/"+suite.regionID.String()+"/contribution/money", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ContributionHandlerTestSuite) TestCreateMember_Success() {
	suite.mockContribSvc.EXPECT().
		Create(suite.userID, suite.regionID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.CreateMemberRequest) (*service.MemberResponse, error) {
			assert.Equal(suite.T(), models.BoardTypeHonor, req.Type)
			assert.Equal(suite.T(), "开业剪彩", req.Note)
			return &service.MemberResponse{ID: uuid.New(), RankPosition: 1, Name: req.Name}, nil
		})

	w := suite.doJSON(http.MethodPost, "/api/regions/"+suite.regionID.String()+"/contribution",
		gin.H{"type": "honor", "name": "老会员", "note": "开业剪彩"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"success":true`)
}

func (suite *ContributionHandlerTestSuite) TestUpdateMember_NotFound() {
	memberID := uuid.New()
	suite.mockContribSvc.EXPECT().
		Update(suite.userID, suite.regionID, memberID, gomock.Any()).
		Return(apperrors.ErrMemberNotFound)

	w := suite.doJSON(http.MethodPut,
		"/api/regions/"+suite.regionID.String()+"/contribution/"+memberID.String(),
		gin.H{"name": "老会员"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ContributionHandlerTestSuite) TestDeleteMember_Success() {
	memberID := uuid.New()
	suite.mockContribSvc.EXPECT().
		Delete(suite.userID, suite.regionID, memberID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete,
		"/api/regions/"+suite.regionID.String()+"/contribution/"+memberID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ContributionHandlerTestSuite) TestReorderMembers_InvalidPermutation_BadRequest() {
	suite.mockContribSvc.EXPECT().
		Reorder(suite.userID, suite.regionID, gomock.Any()).
		Return(apperrors.ErrInvalidPermutation)

	w := suite.doJSON(http.MethodPost,
		"/api/regions/"+suite.regionID.String()+"/contribution/reorder",
		gin.H{"type": "resource", "orderedIds": []uuid.UUID{uuid.New()}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestContributionHandlerTestSuite runs the test suite
func TestContributionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContributionHandlerTestSuite))
}
