package validators

import (
	"strings"
	"unicode/utf8"

	"task-matrix-system.com/task-matrix/internal/constants"
	dto "task-matrix-system.com/task-matrix/internal/data_models"
	apperr "task-matrix-system.com/task-matrix/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	return validateTaskFields(r.Title, r.Urgency, r.Importance, r.EstimatedHours)
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	return validateTaskFields(r.Title, r.Urgency, r.Importance, r.EstimatedHours)
}

func validateTaskFields(title, urgency, importance string, estimatedHours *float64) error {
	if strings.TrimSpace(title) == "" {
		return apperr.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return apperr.ErrTitleTooLong
	}
	if urgency != "" && !constants.ValidUrgency(constants.Urgency(urgency)) {
		return apperr.ErrInvalidUrgency
	}
	if importance != "" && !constants.ValidImportance(constants.Importance(importance)) {
		return apperr.ErrInvalidImportance
	}
	if estimatedHours != nil && (*estimatedHours < 0 || *estimatedHours > constants.MaxEstimatedHours) {
		return apperr.ErrInvalidEstimatedHours
	}
	return nil
}
