package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskdeck/internal/cache"
	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/model"
	"taskdeck/internal/pagination"
	"taskdeck/internal/repository"
)

const taskCacheTTL = 5 * time.Minute

// TaskService handles ownership-scoped task operations. Every operation is
// scoped to the calling user; a task that exists but belongs to someone else
// behaves exactly like a missing task.
type TaskService interface {
	Create(ctx context.Context, userID uint, title string) (*model.Task, error)
	Get(ctx context.Context, userID, id uint) (*model.Task, error)
	List(ctx context.Context, userID uint, p pagination.Params, titleQuery string) ([]model.Task, int64, error)
	Replace(ctx context.Context, userID, id uint, title string, done bool) error
	Update(ctx context.Context, userID, id uint, title *string, done *bool) error
	Delete(ctx context.Context, userID, id uint) error
}

type taskService struct {
	tasks repository.TaskRepository
	cache *cache.Client
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository, cache *cache.Client) TaskService {
	return &taskService{tasks: tasks, cache: cache}
}

func (s *taskService) cacheKey(userID, id uint) string {
	return fmt.Sprintf("task:%d:%d", userID, id)
}

// Create stores a new task owned by the user.
func (s *taskService) Create(ctx context.Context, userID uint, title string) (*model.Task, error) {
	task := &model.Task{Title: title, UserID: userID}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Get retrieves a single task with read-through caching.
func (s *taskService) Get(ctx context.Context, userID, id uint) (*model.Task, error) {
	var cached model.Task
	if s.cache.GetJSON(ctx, s.cacheKey(userID, id), &cached) {
		return &cached, nil
	}

	task, err := s.tasks.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(userID, id), task, taskCacheTTL)
	return task, nil
}

// List returns a page of the user's tasks in ascending id order, with the
// total record count for the same filter.
func (s *taskService) List(ctx context.Context, userID uint, p pagination.Params, titleQuery string) ([]model.Task, int64, error) {
	total, err := s.tasks.Count(ctx, userID, titleQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}
	tasks, err := s.tasks.List(ctx, userID, p.Skip(), p.Limit, titleQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, total, nil
}

// Replace overwrites title and done in full.
func (s *taskService) Replace(ctx context.Context, userID, id uint, title string, done bool) error {
	return s.update(ctx, userID, id, map[string]interface{}{
		"title": title,
		"done":  done,
	})
}

// Update applies a partial change; absent fields are left untouched.
func (s *taskService) Update(ctx context.Context, userID, id uint, title *string, done *bool) error {
	fields := map[string]interface{}{}
	if title != nil {
		fields["title"] = *title
	}
	if done != nil {
		fields["done"] = *done
	}

	if len(fields) == 0 {
		// Nothing to change; still report 404 for a missing task.
		_, err := s.Get(ctx, userID, id)
		return err
	}
	return s.update(ctx, userID, id, fields)
}

func (s *taskService) update(ctx context.Context, userID, id uint, fields map[string]interface{}) error {
	rows, err := s.tasks.Update(ctx, id, userID, fields)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if rows == 0 {
		// MySQL reports zero affected rows for a value-identical update, so
		// distinguish "no matching row" from "nothing changed".
		if _, err := s.tasks.FindByID(ctx, id, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return fmt.Errorf("update task: %w", err)
		}
	}

	s.cache.Delete(ctx, s.cacheKey(userID, id))
	return nil
}

// Delete soft-deletes the task through the ownership predicate.
func (s *taskService) Delete(ctx context.Context, userID, id uint) error {
	rows, err := s.tasks.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrTaskNotFound
	}

	s.cache.Delete(ctx, s.cacheKey(userID, id))
	return nil
}
