package service

import (
	"testing"

	askmodel "rexsphere/internal/domain/ask/model"
	feedmodel "rexsphere/internal/domain/feed/model"
	"rexsphere/internal/domain/rec/model"
	usermodel "rexsphere/internal/domain/user/model"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockRecRepository is a mock of RecRepository
type MockRecRepository struct {
	mock.Mock
}

func (m *MockRecRepository) Create(rec *model.Rec, entry *feedmodel.Feed) error {
	args := m.Called(rec, entry)
	return args.Error(0)
}

func (m *MockRecRepository) GetByID(id uint) (*model.Rec, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rec), args.Error(1)
}

func (m *MockRecRepository) GetAll() ([]model.Rec, error) {
	args := m.Called()
	return args.Get(0).([]model.Rec), args.Error(1)
}

func (m *MockRecRepository) GetByAskID(askID uint) ([]model.Rec, error) {
	args := m.Called(askID)
	return args.Get(0).([]model.Rec), args.Error(1)
}

func (m *MockRecRepository) GetStandalone() ([]model.Rec, error) {
	args := m.Called()
	return args.Get(0).([]model.Rec), args.Error(1)
}

func (m *MockRecRepository) GetByCategory(category enums.Category) ([]model.Rec, error) {
	args := m.Called(category)
	return args.Get(0).([]model.Rec), args.Error(1)
}

func (m *MockRecRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
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

func newRecServiceForTest() (*MockRecRepository, *MockUserRepository, *MockAskRepository, RecService) {
	mockRepo := new(MockRecRepository)
	mockUsers := new(MockUserRepository)
	mockAsks := new(MockAskRepository)
	svc := NewRecService(mockRepo, mockUsers, mockAsks)
	return mockRepo, mockUsers, mockAsks, svc
}

func TestCreateRec(t *testing.T) {
	userID := uint(1)

	t.Run("Standalone rec writes feed snapshot", func(t *testing.T) {
		mockRepo, mockUsers, _, svc := newRecServiceForTest()

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)

		var captured *feedmodel.Feed
		mockRepo.On("Create", mock.AnythingOfType("*model.Rec"), mock.AnythingOfType("*model.Feed")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*feedmodel.Feed)
			}).Return(nil)

		rec, err := svc.Create(userID, "Try the new ramen place", "food", nil)

		assert.NoError(t, err)
		assert.Nil(t, rec.AskID)
		assert.NotNil(t, captured)
		assert.Equal(t, "Try the new ramen place", captured.Content)
		assert.Equal(t, enums.PostTypeRec, captured.Type)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rec answering an ask checks the parent", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, svc := newRecServiceForTest()
		askID := uint(10)

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(&askmodel.Ask{ID: askID}, nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Rec"), mock.AnythingOfType("*model.Feed")).
			Return(nil)

		rec, err := svc.Create(userID, "answer", "FOOD", &askID)

		assert.NoError(t, err)
		assert.Equal(t, askID, *rec.AskID)
		mockAsks.AssertExpectations(t)
	})

	t.Run("Missing parent ask rejected", func(t *testing.T) {
		mockRepo, mockUsers, mockAsks, svc := newRecServiceForTest()
		askID := uint(99)

		mockUsers.On("GetByID", userID).Return(&usermodel.User{ID: userID}, nil)
		mockAsks.On("GetByID", askID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(userID, "answer", "FOOD", &askID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid category rejected", func(t *testing.T) {
		mockRepo, _, _, svc := newRecServiceForTest()

		_, err := svc.Create(userID, "content", "SNACKS", nil)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetRecs(t *testing.T) {
	t.Run("Standalone listing", func(t *testing.T) {
		mockRepo, _, _, svc := newRecServiceForTest()

		mockRepo.On("GetStandalone").Return([]model.Rec{{ID: 1}}, nil)

		recs, err := svc.GetStandalone()

		assert.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("By ask id", func(t *testing.T) {
		mockRepo, _, _, svc := newRecServiceForTest()

		mockRepo.On("GetByAskID", uint(10)).Return([]model.Rec{{ID: 1}, {ID: 2}}, nil)

		recs, err := svc.GetByAskID(10)

		assert.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("Missing rec gives not found", func(t *testing.T) {
		mockRepo, _, _, svc := newRecServiceForTest()

		mockRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDeleteRec(t *testing.T) {
	t.Run("Delete missing rec gives not found", func(t *testing.T) {
		mockRepo, _, _, svc := newRecServiceForTest()

		mockRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}
