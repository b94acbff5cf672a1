package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/model"
	"taskdeck/internal/pagination"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id, userID uint) (*model.Task, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, userID uint, skip, take int, titleQuery string) ([]model.Task, error) {
	args := m.Called(ctx, userID, skip, take, titleQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Count(ctx context.Context, userID uint, titleQuery string) (int64, error) {
	args := m.Called(ctx, userID, titleQuery)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, id, userID uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, userID, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id, userID uint) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("FindByID", ctx, uint(3), uint(1)).
			Return(&model.Task{ID: 3, Title: "buy milk", UserID: 1}, nil)

		svc := NewTaskService(repo, nil)
		task, err := svc.Get(ctx, 1, 3)

		assert.NoError(t, err)
		assert.Equal(t, "buy milk", task.Title)
	})

	t.Run("missing or not owned", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("FindByID", ctx, uint(3), uint(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(repo, nil)
		_, err := svc.Get(ctx, 2, 3)

		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	})
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaskRepository)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Task")).Return(nil)

	svc := NewTaskService(repo, nil)
	task, err := svc.Create(ctx, 1, "buy milk")

	assert.NoError(t, err)
	assert.Equal(t, "buy milk", task.Title)
	assert.Equal(t, uint(1), task.UserID)
	assert.False(t, task.Done)
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaskRepository)
	repo.On("Count", ctx, uint(1), "milk").Return(int64(12), nil)
	repo.On("List", ctx, uint(1), 10, 10, "milk").
		Return([]model.Task{{ID: 11}, {ID: 12}}, nil)

	svc := NewTaskService(repo, nil)
	tasks, total, err := svc.List(ctx, 1, pagination.Params{Page: 2, Limit: 10}, "milk")

	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, tasks, 2)
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update applies only provided fields", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("Update", ctx, uint(3), uint(1), map[string]interface{}{"done": true}).
			Return(int64(1), nil)

		svc := NewTaskService(repo, nil)
		err := svc.Update(ctx, 1, 3, nil, boolPtr(true))

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("zero matched rows for a missing task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("Update", ctx, uint(999999), uint(1), mock.Anything).Return(int64(0), nil)
		repo.On("FindByID", ctx, uint(999999), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(repo, nil)
		err := svc.Update(ctx, 1, 999999, nil, boolPtr(true))

		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	})

	t.Run("zero affected rows for an identical value is a no-op success", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("Update", ctx, uint(3), uint(1), mock.Anything).Return(int64(0), nil)
		repo.On("FindByID", ctx, uint(3), uint(1)).Return(&model.Task{ID: 3, UserID: 1, Done: true}, nil)

		svc := NewTaskService(repo, nil)
		err := svc.Update(ctx, 1, 3, nil, boolPtr(true))

		assert.NoError(t, err)
	})

	t.Run("no fields still reports missing task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("FindByID", ctx, uint(3), uint(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(repo, nil)
		err := svc.Update(ctx, 2, 3, nil, nil)

		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTaskService_Replace(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaskRepository)
	repo.On("Update", ctx, uint(3), uint(1), map[string]interface{}{"title": "new title", "done": false}).
		Return(int64(1), nil)

	svc := NewTaskService(repo, nil)
	assert.NoError(t, svc.Replace(ctx, 1, 3, "new title", false))
	repo.AssertExpectations(t)
}

// Ownership isolation: another user's delete matches zero rows and surfaces
// as not-found, indistinguishable from a missing task.
func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("Delete", ctx, uint(3), uint(1)).Return(int64(1), nil)

		svc := NewTaskService(repo, nil)
		assert.NoError(t, svc.Delete(ctx, 1, 3))
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("Delete", ctx, uint(3), uint(2)).Return(int64(0), nil)

		svc := NewTaskService(repo, nil)
		assert.ErrorIs(t, svc.Delete(ctx, 2, 3), apperrors.ErrTaskNotFound)
	})
}
