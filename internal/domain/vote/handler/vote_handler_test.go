package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rexsphere/internal/domain/vote/model"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"
	"rexsphere/internal/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVoteService is a mock of VoteService
type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) CastForAsk(userID, askID uint, isUpvote bool) (model.Outcome, error) {
	args := m.Called(userID, askID, isUpvote)
	return args.Get(0).(model.Outcome), args.Error(1)
}

func (m *MockVoteService) CastForRec(userID, recID uint, isUpvote bool) (model.Outcome, error) {
	args := m.Called(userID, recID, isUpvote)
	return args.Get(0).(model.Outcome), args.Error(1)
}

func (m *MockVoteService) CountForAsk(askID uint, voteType enums.VoteType) (int64, error) {
	args := m.Called(askID, voteType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoteService) CountForRec(recID uint, voteType enums.VoteType) (int64, error) {
	args := m.Called(recID, voteType)
	return args.Get(0).(int64), args.Error(1)
}

func setupRouter(svc *MockVoteService, authedUserID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewVoteHandler(svc)

	r := gin.New()
	if authedUserID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.CtxUserIDKey, authedUserID)
		})
	}
	r.POST("/votes/ask/:askId", h.CastForAsk)
	r.POST("/votes/rec/:recId", h.CastForRec)
	r.GET("/votes/ask/:askId/upvotes", h.CountAskUpvotes)
	r.GET("/votes/ask/:askId/downvotes", h.CountAskDownvotes)
	return r
}

func TestCastForAskHandler(t *testing.T) {
	t.Run("Upvote forwarded to the service", func(t *testing.T) {
		svc := new(MockVoteService)
		r := setupRouter(svc, 1)

		svc.On("CastForAsk", uint(1), uint(10), true).Return(model.OutcomeCreated, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/votes/ask/10?isUpvote=true", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CREATED")
		svc.AssertExpectations(t)
	})

	t.Run("Missing isUpvote is a bad request", func(t *testing.T) {
		svc := new(MockVoteService)
		r := setupRouter(svc, 1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/votes/ask/10", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CastForAsk", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non-numeric id is a bad request", func(t *testing.T) {
		svc := new(MockVoteService)
		r := setupRouter(svc, 1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/votes/ask/abc?isUpvote=true", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthenticated request rejected", func(t *testing.T) {
		svc := new(MockVoteService)
		r := setupRouter(svc, 0)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/votes/ask/10?isUpvote=true", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing target maps to 404", func(t *testing.T) {
		svc := new(MockVoteService)
		r := setupRouter(svc, 1)

		svc.On("CastForAsk", uint(1), uint(99), true).
			Return(model.Outcome(""), apperrors.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/votes/ask/99?isUpvote=true", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCountHandlers(t *testing.T) {
	t.Run("Upvote and downvote counts use the right direction", func(t *testing.T) {
		svc := new(MockVoteService)
		r := setupRouter(svc, 1)

		svc.On("CountForAsk", uint(10), enums.VoteTypeUp).Return(int64(3), nil)
		svc.On("CountForAsk", uint(10), enums.VoteTypeDown).Return(int64(1), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/votes/ask/10/upvotes", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":3`)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/votes/ask/10/downvotes", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":1`)

		svc.AssertExpectations(t)
	})
}
