package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPlayerSvc *mocks.MockPlayerServiceInterface
	handler       *handlers.PlayerHandler
	router        *gin.Engine

	userID   uuid.UUID
	regionID uuid.UUID
}

func (suite *PlayerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlayerSvc = mocks.NewMockPlayerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPlayerHandler(suite.mockPlayerSvc)
	suite.userID = uuid.New()
	suite.regionID = uuid.New()

	suite.router = gin.New()
	suite.router.GET("/api/regions/:id/players/:hand", suite.handler.ListPlayers)

	authed := suite.router.Group("", func(c *gin.Context) {
		c.Set(auth.ContextUserIDKey, suite.userID)
	})
	authed.POST("/api/regions/:id/players", suite.handler.CreatePlayer)
	authed.PUT("/api/regions/:id/players/:playerId", suite.handler.UpdatePlayer)
	authed.DELETE("/api/regions/:id/players/:playerId", suite.handler.DeletePlayer)
	authed.POST("/api/regions/:id/players/reorder", suite.handler.ReorderPlayers)
	authed.POST("/api/regions/:id/players/:playerId/avatar", suite.handler.UploadPlayerAvatar)
}

func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PlayerHandlerTestSuite) TestListPlayers_Success() {
	suite.mockPlayerSvc.EXPECT().
		List(suite.regionID, models.HandLeft).
		Return([]service.PlayerResponse{
			{ID: uuid.New(), RankPosition: 1, Name: "铁臂王", Title: "天榜第一"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/regions/"+suite.regionID.String()+"/players/left", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.PlayerResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "天榜第一", got[0].Title)
}

func (suite *PlayerHandlerTestSuite) TestListPlayers_InvalidHand_BadRequest() {
	suite.mockPlayerSvc.EXPECT().
		List(suite.regionID, models.Hand("both")).
		Return(nil, apperrors.ErrInvalidHand)

	req := httptest.NewRequest(http.MethodGet, "/api/regions/"+suite.regionID.String()+"/players/both", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PlayerHandlerTestSuite) TestListPlayers_BadRegionID_BadRequest() {
	req := httptest.NewRequest(http.MethodGet, "/api/regions/not-a-uuid/players/left", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid UUID format")
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayer_Success() {
	suite.mockPlayerSvc.EXPECT().
		Create(suite.userID, suite.regionID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.CreatePlayerRequest) (*service.PlayerResponse, error) {
			assert.Equal(suite.T(), models.HandRight, req.Hand)
			return &service.PlayerResponse{ID: uuid.New(), RankPosition: 4, Name: req.Name}, nil
		})

	w := suite.doJSON(http.MethodPost, "/api/regions/"+suite.regionID.String()+"/players",
		gin.H{"hand": "right", "name": "铁臂王"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"success":true`)
	assert.Contains(suite.T(), w.Body.String(), `"rank_position":4`)
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayer_BoardFull_BadRequest() {
	suite.mockPlayerSvc.EXPECT().
		Create(suite.userID, suite.regionID, gomock.Any()).
		Return(nil, apperrors.ErrRankingFull)

	w := suite.doJSON(http.MethodPost, "/api/regions/"+suite.regionID.String()+"/players",
		gin.H{"hand": "left", "name": "铁臂王"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ranking is full")
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayer_Forbidden() {
	suite.mockPlayerSvc.EXPECT().
		Create(suite.userID, suite.regionID, gomock.Any()).
		Return(nil, apperrors.ErrForbidden)

	w := suite.doJSON(http.MethodPost, "/api/regions/"+suite.regionID.String()+"/players",
		gin.H{"hand": "left", "name": "铁臂王"})

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *PlayerHandlerTestSuite) TestUpdatePlayer_NotFound() {
	playerID := uuid.New()
	suite.mockPlayerSvc.EXPECT().
		Update(suite.userID, suite.regionID, playerID, gomock.Any()).
		Return(apperrors.ErrPlayerNotFound)

	w := suite.doJSON(http.MethodPut, "/api/regions/"+suite.regionID.String()+"/players/"+playerID.String(),
		gin.H{"name": "铁臂王"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PlayerHandlerTestSuite) TestDeletePlayer_Success() {
	playerID := uuid.New()
	suite.mockPlayerSvc.EXPECT().
		Delete(suite.userID, suite.regionID, playerID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/regions/"+suite.regionID.String()+"/players/"+playerID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"success":true`)
}

func (suite *PlayerHandlerTestSuite) TestReorderPlayers_Success() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	suite.mockPlayerSvc.EXPECT().
		Reorder(suite.userID, suite.regionID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.ReorderPlayersRequest) error {
			assert.Equal(suite.T(), models.HandLeft, req.Hand)
			assert.Equal(suite.T(), ids, req.OrderedIDs)
			return nil
		})

	w := suite.doJSON(http.MethodPost, "/api/regions/"+suite.regionID.String()+"/players/reorder",
		gin.H{"hand": "left", "orderedIds": ids})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *PlayerHandlerTestSuite) TestReorderPlayers_InvalidPermutation_BadRequest() {
	suite.mockPlayerSvc.EXPECT().
		Reorder(suite.userID, suite.regionID, gomock.Any()).
		Return(apperrors.ErrInvalidPermutation)

	w := suite.doJSON(http.MethodPost, "/api/regions/"+suite.regionID.String()+"/players/reorder",
		gin.H{"hand": "left", "orderedIds": []uuid.UUID{uuid.New()}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "permutation")
}

func (suite *PlayerHandlerTestSuite) TestUploadPlayerAvatar_Success() {
	playerID := uuid.New()
	suite.mockPlayerSvc.EXPECT().
		UploadAvatar(suite.userID, suite.regionID, playerID, gomock.Any()).
		DoAndReturn(func(_, _, _ uuid.UUID, file *multipart.FileHeader) (string, error) {
			assert.Equal(suite.T(), "avatar.png", file.Filename)
			return "/uploads/new-avatar.png", nil
		})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", "avatar.png")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("img-bytes"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost,
		"/api/regions/"+suite.regionID.String()+"/players/"+playerID.String()+"/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "/uploads/new-avatar.png")
}

func (suite *PlayerHandlerTestSuite) TestUploadPlayerAvatar_NoFile_BadRequest() {
	playerID := uuid.New()

	req := httptest.NewRequest(http.MethodPost,
		"/api/regions/"+suite.regionID.String()+"/players/"+playerID.String()+"/avatar", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "no file provided")
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
