package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-matrix-system.com/task-matrix/internal/constants"
	"task-matrix-system.com/task-matrix/internal/matrix"
	model "task-matrix-system.com/task-matrix/internal/models"
)

var ErrOptimisticLock = errors.New("optimistic locking conflict")

// The enum columns store words, so ordering must go through weight
// expressions rather than the raw text (lexicographic order would put
// not_important above important).
const (
	urgencyRank    = "CASE urgency WHEN 'urgent' THEN 2 ELSE 1 END"
	importanceRank = "CASE importance WHEN 'important' THEN 2 ELSE 1 END"
)

// ListFilter describes a task query. Filters are conjunctive; zero values
// mean "no filter". Sort selects a preset order; anything unrecognized
// falls back to the default order.
type ListFilter struct {
	Completed  *bool
	Urgency    constants.Urgency
	Importance constants.Importance
	Quadrant   int
	Sort       string
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.ID = uuid.NewString()
	task.Version = 1

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List applies the filter and returns tasks in the requested order. Tasks
// without a due date sort after dated tasks whenever due_date participates
// in the order.
func (r *TaskRepository) List(ctx context.Context, f ListFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})

	if f.Completed != nil {
		query = query.Where("completed = ?", *f.Completed)
	}
	if f.Urgency != "" {
		query = query.Where("urgency = ?", f.Urgency)
	}
	if f.Importance != "" {
		query = query.Where("importance = ?", f.Importance)
	}
	if u, i, ok := matrix.QuadrantPair(f.Quadrant); ok {
		query = query.Where("urgency = ? AND importance = ?", u, i)
	}

	var tasks []model.Task
	if err := applySort(query, f.Sort).Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func applySort(query *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "urgency", "eisenhower":
		return query.
			Order(urgencyRank + " desc").
			Order(importanceRank + " desc")
	case "importance":
		return query.
			Order(importanceRank + " desc").
			Order(urgencyRank + " desc")
	case "due_date":
		return query.
			Order("due_date IS NULL").
			Order("due_date asc")
	case "created_at":
		return query.Order("created_at desc")
	default:
		return query.
			Order(urgencyRank + " desc").
			Order(importanceRank + " desc").
			Order("due_date IS NULL").
			Order("due_date asc").
			Order("created_at desc")
	}
}

// ListPendingDue returns open tasks that carry a due date, in default order.
// Whether each one is actually overdue still depends on the all-day rule,
// which the caller applies.
func (r *TaskRepository) ListPendingDue(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	query := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("completed = ? AND due_date IS NOT NULL", false)

	if err := applySort(query, "").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) CountOpenInQuadrant(
	ctx context.Context,
	u constants.Urgency,
	i constants.Importance,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("urgency = ? AND importance = ? AND completed = ?", u, i, false).
		Count(&count).Error

	return count, err
}

// Update persists the task's mutable fields guarded by the version column.
// A stale version loses with ErrOptimisticLock.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":           task.Title,
			"description":     task.Description,
			"completed":       task.Completed,
			"urgency":         task.Urgency,
			"importance":      task.Importance,
			"due_date":        task.DueDate,
			"is_all_day":      task.IsAllDay,
			"estimated_hours": task.EstimatedHours,
			"user_id":         task.UserID,
			"version":         gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
