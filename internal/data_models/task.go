package dto

import (
	"time"

	"task-matrix-system.com/task-matrix/internal/constants"
	"task-matrix-system.com/task-matrix/internal/matrix"
	model "task-matrix-system.com/task-matrix/internal/models"
)

type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Urgency        string     `json:"urgency"`
	Importance     string     `json:"importance"`
	DueDate        *time.Time `json:"due_date"`
	IsAllDay       bool       `json:"is_all_day"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

// UpdateTaskRequest replaces the task's mutable fields wholesale; omitted
// urgency/importance fall back to their defaults, same as on create.
type UpdateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Completed      bool       `json:"completed"`
	Urgency        string     `json:"urgency"`
	Importance     string     `json:"importance"`
	DueDate        *time.Time `json:"due_date"`
	IsAllDay       bool       `json:"is_all_day"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

// TaskResponse is a Task plus its derived matrix properties, recomputed on
// every read.
type TaskResponse struct {
	ID                    string               `json:"id"`
	Title                 string               `json:"title"`
	Description           string               `json:"description"`
	Completed             bool                 `json:"completed"`
	Urgency               constants.Urgency    `json:"urgency"`
	Importance            constants.Importance `json:"importance"`
	DueDate               *time.Time           `json:"due_date"`
	IsAllDay              bool                 `json:"is_all_day"`
	EstimatedHours        *float64             `json:"estimated_hours"`
	EstimatedHoursDisplay *string              `json:"estimated_hours_display"`
	IsOverdue             bool                 `json:"is_overdue"`
	UrgencyWeight         int                  `json:"urgency_weight"`
	ImportanceWeight      int                  `json:"importance_weight"`
	EisenhowerQuadrant    int                  `json:"eisenhower_quadrant"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
	UserID                *string              `json:"user_id,omitempty"`
}

type MatrixResponse struct {
	Quadrant1 []TaskResponse `json:"quadrant_1"`
	Quadrant2 []TaskResponse `json:"quadrant_2"`
	Quadrant3 []TaskResponse `json:"quadrant_3"`
	Quadrant4 []TaskResponse `json:"quadrant_4"`
}

func NewTaskResponse(t *model.Task, c matrix.Classification) TaskResponse {
	return TaskResponse{
		ID:                    t.ID,
		Title:                 t.Title,
		Description:           t.Description,
		Completed:             t.Completed,
		Urgency:               t.Urgency,
		Importance:            t.Importance,
		DueDate:               t.DueDate,
		IsAllDay:              t.IsAllDay,
		EstimatedHours:        t.EstimatedHours,
		EstimatedHoursDisplay: c.EstimatedHoursDisplay,
		IsOverdue:             c.IsOverdue,
		UrgencyWeight:         c.UrgencyWeight,
		ImportanceWeight:      c.ImportanceWeight,
		EisenhowerQuadrant:    c.Quadrant,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
		UserID:                t.UserID,
	}
}
