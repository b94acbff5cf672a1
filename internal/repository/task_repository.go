package repository

import (
	"context"

	"gorm.io/gorm"

	"taskdeck/internal/model"
)

// TaskRepository defines task persistence operations. Every id-filtered
// operation also filters by the owning user id, so "does not exist" and
// "not yours" are indistinguishable to callers.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id, userID uint) (*model.Task, error)
	List(ctx context.Context, userID uint, skip, take int, titleQuery string) ([]model.Task, error)
	Count(ctx context.Context, userID uint, titleQuery string) (int64, error)
	Update(ctx context.Context, id, userID uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id, userID uint) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) FindByID(ctx context.Context, id, userID uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, userID uint, skip, take int, titleQuery string) ([]model.Task, error) {
	var tasks []model.Task
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if titleQuery != "" {
		q = q.Where("title LIKE ?", "%"+titleQuery+"%")
	}
	err := q.Order("id ASC").Offset(skip).Limit(take).Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Count(ctx context.Context, userID uint, titleQuery string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", userID)
	if titleQuery != "" {
		q = q.Where("title LIKE ?", "%"+titleQuery+"%")
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update applies fields through a single conditional statement so concurrent
// writes to the same task cannot interleave. Returns the matched row count.
func (r *taskRepository) Update(ctx context.Context, id, userID uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete soft-deletes through the same ownership predicate.
func (r *taskRepository) Delete(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})
	return res.RowsAffected, res.Error
}
