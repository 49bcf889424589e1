package service

import (
	"testing"

	askmodel "rexsphere/internal/domain/ask/model"
	feedmodel "rexsphere/internal/domain/feed/model"
	recmodel "rexsphere/internal/domain/rec/model"
	usermodel "rexsphere/internal/domain/user/model"
	"rexsphere/internal/domain/vote/model"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockVoteRepository is a mock of VoteRepository
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Toggle(userID uint, askID, recID *uint, voteType enums.VoteType) (model.Outcome, error) {
	args := m.Called(userID, askID, recID, voteType)
	return args.Get(0).(model.Outcome), args.Error(1)
}

func (m *MockVoteRepository) CountByAsk(askID uint, voteType enums.VoteType) (int64, error) {
	args := m.Called(askID, voteType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoteRepository) CountByRec(recID uint, voteType enums.VoteType) (int64, error) {
	args := m.Called(recID, voteType)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *usermodel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*usermodel.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodel.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*usermodel.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodel.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]usermodel.User, error) {
	args := m.Called()
	return args.Get(0).([]usermodel.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *usermodel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAskRepository is a mock of AskRepository
type MockAskRepository struct {
	mock.Mock
}

func (m *MockAskRepository) Create(ask *askmodel.Ask, entry *feedmodel.Feed) error {
	args := m.Called(ask, entry)
	return args.Error(0)
}

func (m *MockAskRepository) GetByID(id uint) (*askmodel.Ask, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*askmodel.Ask), args.Error(1)
}

func (m *MockAskRepository) GetAll() ([]askmodel.Ask, error) {
	args := m.Called()
	return args.Get(0).([]askmodel.Ask), args.Error(1)
}

func (m *MockAskRepository) GetByCategory(category enums.Category) ([]askmodel.Ask, error) {
	args := m.Called(category)
	return args.Get(0).([]askmodel.Ask), args.Error(1)
}

func (m *MockAskRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRecRepository is a mock of RecRepository
type MockRecRepository struct {
	mock.Mock
}

func (m *MockRecRepository) Create(rec *recmodel.Rec, entry *feedmodel.Feed) error {
	args := m.Called(rec, entry)
	return args.Error(0)
}

func (m *MockRecRepository) GetByID(id uint) (*recmodel.Rec, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recmodel.Rec), args.Error(1)
}

func (m *MockRecRepository) GetAll() ([]recmodel.Rec, error) {
	args := m.Called()
	return args.Get(0).([]recmodel.Rec), args.Error(1)
}

func (m *MockRecRepository) GetByAskID(askID uint) ([]recmodel.Rec, error) {
	args := m.Called(askID)
	return args.Get(0).([]recmodel.Rec), args.Error(1)
}

func (m *MockRecRepository) GetStandalone() ([]recmodel.Rec, error) {
	args := m.Called()
	return args.Get(0).([]recmodel.Rec), args.Error(1)
}

func (m *MockRecRepository) GetByCategory(category enums.Category) ([]recmodel.Rec, error) {
	args := m.Called(category)
	return args.Get(0).([]recmodel.Rec), args.Error(1)
}

func (m *MockRecRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func newVoteServiceForTest() (*MockVoteRepository, *MockUserRepository, *MockAskRepository, *MockRecRepository, VoteService) {
	mockRepo := new(MockVoteRepository)
	mockUsers := new(MockUserRepository)
	mockAsks := new(MockAskRepository)
	mockRecs := new(MockRecRepository)
	svc := NewVoteService(mockRepo, mockUsers, mockAsks, mockRecs)
	return mockRepo, mockUsers, mockAsks, mockRecs, svc
}

func TestCastForAsk(t *testing.T) {
	userID := uint(1)
	askID := uint(10)

	t.Run("First vote creates", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, _, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(&askmodel.Ask{ID: askID}, nil)
		mockRepo.On("Toggle", userID, &askID, (*uint)(nil), enums.VoteTypeUp).
			Return(model.OutcomeCreated, nil)

		outcome, err := svc.CastForAsk(userID, askID, true)

		assert.NoError(t, err)
		assert.Equal(t, model.OutcomeCreated, outcome)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Same direction removes", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, _, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(&askmodel.Ask{ID: askID}, nil)
		mockRepo.On("Toggle", userID, &askID, (*uint)(nil), enums.VoteTypeUp).
			Return(model.OutcomeRemoved, nil)

		outcome, err := svc.CastForAsk(userID, askID, true)

		assert.NoError(t, err)
		assert.Equal(t, model.OutcomeRemoved, outcome)
	})

	t.Run("Opposite direction changes", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, _, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(&askmodel.Ask{ID: askID}, nil)
		mockRepo.On("Toggle", userID, &askID, (*uint)(nil), enums.VoteTypeDown).
			Return(model.OutcomeChanged, nil)

		outcome, err := svc.CastForAsk(userID, askID, false)

		assert.NoError(t, err)
		assert.Equal(t, model.OutcomeChanged, outcome)
	})

	t.Run("Unknown actor rejected", func(t *testing.T) {
		mockRepo, mockUsers, _, _, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CastForAsk(userID, askID, true)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		mockRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown target rejected", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, _, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CastForAsk(userID, askID, true)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate key retried once", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, _, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(&askmodel.Ask{ID: askID}, nil)
		mockRepo.On("Toggle", userID, &askID, (*uint)(nil), enums.VoteTypeUp).
			Return(model.Outcome(""), gorm.ErrDuplicatedKey).Once()
		mockRepo.On("Toggle", userID, &askID, (*uint)(nil), enums.VoteTypeUp).
			Return(model.OutcomeRemoved, nil).Once()

		outcome, err := svc.CastForAsk(userID, askID, true)

		assert.NoError(t, err)
		assert.Equal(t, model.OutcomeRemoved, outcome)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate key twice gives conflict", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, _, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(&askmodel.Ask{ID: askID}, nil)
		mockRepo.On("Toggle", userID, &askID, (*uint)(nil), enums.VoteTypeUp).
			Return(model.Outcome(""), gorm.ErrDuplicatedKey).Twice()

		_, err := svc.CastForAsk(userID, askID, true)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		mockRepo.AssertExpectations(t)
	})
}

func TestCastForRec(t *testing.T) {
	userID := uint(1)
	recID := uint(20)

	t.Run("First vote creates", func(t *testing.T) {
		mockRepo, mockUsers, _, mockRecs, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockRecs.On("GetByID", recID).Return(&recmodel.Rec{ID: recID}, nil)
		mockRepo.On("Toggle", userID, (*uint)(nil), &recID, enums.VoteTypeDown).
			Return(model.OutcomeCreated, nil)

		outcome, err := svc.CastForRec(userID, recID, false)

		assert.NoError(t, err)
		assert.Equal(t, model.OutcomeCreated, outcome)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown target rejected", func(t *testing.T) {
		_, mockUsers, _, mockRecs, svc := newVoteServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockRecs.On("GetByID", recID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CastForRec(userID, recID, true)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCountVotes(t *testing.T) {
	t.Run("Counts come from the ledger", func(t *testing.T) {
		mockRepo, _, _, _, svc := newVoteServiceForTest()

		mockRepo.On("CountByAsk", uint(10), enums.VoteTypeUp).Return(int64(3), nil)
		mockRepo.On("CountByRec", uint(20), enums.VoteTypeDown).Return(int64(0), nil)

		up, err := svc.CountForAsk(10, enums.VoteTypeUp)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), up)

		down, err := svc.CountForRec(20, enums.VoteTypeDown)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), down)
	})
}
