package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-matrix-system.com/task-matrix/internal/constants"
	dto "task-matrix-system.com/task-matrix/internal/data_models"
	apperr "task-matrix-system.com/task-matrix/internal/errors"
	"task-matrix-system.com/task-matrix/internal/matrix"
	model "task-matrix-system.com/task-matrix/internal/models"
	"task-matrix-system.com/task-matrix/internal/quota"
	repository "task-matrix-system.com/task-matrix/internal/repositories"
)

// MatrixView partitions the whole task set into the four Eisenhower
// quadrants, each in default order.
type MatrixView struct {
	Quadrant1 []model.Task
	Quadrant2 []model.Task
	Quadrant3 []model.Task
	Quadrant4 []model.Task
}

type TaskService struct {
	repo  *repository.TaskRepository
	guard *quota.Guard
	loc   *time.Location
	now   func() time.Time
}

func NewTaskService(
	repo *repository.TaskRepository,
	guard *quota.Guard,
	loc *time.Location,
) *TaskService {
	return &TaskService{
		repo:  repo,
		guard: guard,
		loc:   loc,
		now:   time.Now,
	}
}

// Classify computes the task's derived matrix properties at the current
// instant.
func (s *TaskService) Classify(t *model.Task) matrix.Classification {
	return matrix.Classify(t, s.now(), s.loc)
}

// CreateTask admits the task against its quadrant's open-task cap, then
// persists it. The admission lock is held until the create finishes.
func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	urgency, importance := normalizePair(req.Urgency, req.Importance)

	release, err := s.guard.Admit(ctx, urgency, importance)
	if err != nil {
		return nil, err
	}
	defer release()

	task := &model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Urgency:        urgency,
		Importance:     importance,
		DueDate:        req.DueDate,
		IsAllDay:       req.IsAllDay,
		EstimatedHours: req.EstimatedHours,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, f repository.ListFilter) ([]model.Task, error) {
	return s.repo.List(ctx, f)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Completed = req.Completed
	task.Urgency, task.Importance = normalizePair(req.Urgency, req.Importance)
	task.DueDate = req.DueDate
	task.IsAllDay = req.IsAllDay
	task.EstimatedHours = req.EstimatedHours

	if err := s.saveTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

// ToggleCompleted flips the task's completed flag. Reopening a completed
// task is never quota-checked; the cap applies to creations only.
func (s *TaskService) ToggleCompleted(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	task.Completed = !task.Completed

	if err := s.saveTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// OverdueTasks narrows to open, dated tasks in the store and applies the
// all-day-aware overdue rule on top.
func (s *TaskService) OverdueTasks(ctx context.Context) ([]model.Task, error) {
	candidates, err := s.repo.ListPendingDue(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	overdue := make([]model.Task, 0, len(candidates))
	for _, task := range candidates {
		if matrix.IsOverdue(&task, now, s.loc) {
			overdue = append(overdue, task)
		}
	}

	return overdue, nil
}

// UrgentTasks and CriticalTasks are fixed views over the urgency and
// importance filters, matching the two-value enums.
func (s *TaskService) UrgentTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx, repository.ListFilter{Urgency: constants.UrgencyUrgent})
}

func (s *TaskService) CriticalTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx, repository.ListFilter{Importance: constants.ImportanceImportant})
}

func (s *TaskService) CompletedTasks(ctx context.Context) ([]model.Task, error) {
	return s.listByCompleted(ctx, true)
}

func (s *TaskService) PendingTasks(ctx context.Context) ([]model.Task, error) {
	return s.listByCompleted(ctx, false)
}

// Matrix buckets every task into its quadrant. Each bucket inherits the
// repository's default order.
func (s *TaskService) Matrix(ctx context.Context) (*MatrixView, error) {
	tasks, err := s.repo.List(ctx, repository.ListFilter{})
	if err != nil {
		return nil, err
	}

	view := &MatrixView{
		Quadrant1: []model.Task{},
		Quadrant2: []model.Task{},
		Quadrant3: []model.Task{},
		Quadrant4: []model.Task{},
	}

	for _, task := range tasks {
		switch matrix.Quadrant(task.Urgency, task.Importance) {
		case matrix.QuadrantDoFirst:
			view.Quadrant1 = append(view.Quadrant1, task)
		case matrix.QuadrantSchedule:
			view.Quadrant2 = append(view.Quadrant2, task)
		case matrix.QuadrantDelegate:
			view.Quadrant3 = append(view.Quadrant3, task)
		case matrix.QuadrantDrop:
			view.Quadrant4 = append(view.Quadrant4, task)
		}
	}

	return view, nil
}

func (s *TaskService) listByCompleted(ctx context.Context, completed bool) ([]model.Task, error) {
	return s.repo.List(ctx, repository.ListFilter{Completed: &completed})
}

func (s *TaskService) saveTask(ctx context.Context, task *model.Task) error {
	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrOptimisticLock) {
			return apperr.ErrOptimisticLock
		}
		return err
	}

	refreshed, err := s.repo.FindByID(ctx, task.ID)
	if err != nil {
		return mapNotFound(err)
	}

	*task = *refreshed
	return nil
}

func normalizePair(urgency, importance string) (constants.Urgency, constants.Importance) {
	u := constants.Urgency(urgency)
	if u == "" {
		u = constants.UrgencyNotUrgent
	}

	i := constants.Importance(importance)
	if i == "" {
		i = constants.ImportanceNotImportant
	}

	return u, i
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrTaskNotFound
	}
	return err
}
