package model

import (
	"time"

	"task-matrix-system.com/task-matrix/internal/constants"
)

type Task struct {
	ID             string               `gorm:"primaryKey;size:36" json:"id"`
	Title          string               `gorm:"size:200;not null" json:"title"`
	Description    string               `json:"description"`
	Completed      bool                 `gorm:"not null;default:false" json:"completed"`
	Urgency        constants.Urgency    `gorm:"type:varchar(15);not null;default:not_urgent" json:"urgency"`
	Importance     constants.Importance `gorm:"type:varchar(15);not null;default:not_important" json:"importance"`
	DueDate        *time.Time           `json:"due_date,omitempty"`
	IsAllDay       bool                 `gorm:"not null;default:false" json:"is_all_day"`
	EstimatedHours *float64             `gorm:"type:decimal(5,2)" json:"estimated_hours,omitempty"`
	Version        uint                 `gorm:"not null;default:1" json:"-"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	UserID         *string              `gorm:"size:36" json:"user_id,omitempty"`
}
