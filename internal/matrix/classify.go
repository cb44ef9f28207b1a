// Package matrix derives Eisenhower-matrix properties from a task snapshot.
// Everything here is a pure function; derived values are never persisted
// because overdue status depends on the current time.
package matrix

import (
	"fmt"
	"math"
	"time"

	"task-matrix-system.com/task-matrix/internal/constants"
	model "task-matrix-system.com/task-matrix/internal/models"
)

const (
	QuadrantDoFirst  = 1 // urgent & important
	QuadrantSchedule = 2 // important, not urgent
	QuadrantDelegate = 3 // urgent, not important
	QuadrantDrop     = 4 // neither
)

var quadrantLabels = map[int]string{
	QuadrantDoFirst:  "Q1 (urgent & important)",
	QuadrantSchedule: "Q2 (important, not urgent)",
	QuadrantDelegate: "Q3 (urgent, not important)",
	QuadrantDrop:     "Q4 (neither urgent nor important)",
}

type Classification struct {
	Quadrant              int
	UrgencyWeight         int
	ImportanceWeight      int
	IsOverdue             bool
	EstimatedHoursDisplay *string
}

func Quadrant(u constants.Urgency, i constants.Importance) int {
	urgent := u == constants.UrgencyUrgent
	important := i == constants.ImportanceImportant

	switch {
	case urgent && important:
		return QuadrantDoFirst
	case important:
		return QuadrantSchedule
	case urgent:
		return QuadrantDelegate
	default:
		return QuadrantDrop
	}
}

// QuadrantPair is the inverse of Quadrant. The second return is false for
// quadrant numbers outside 1..4.
func QuadrantPair(q int) (constants.Urgency, constants.Importance, bool) {
	switch q {
	case QuadrantDoFirst:
		return constants.UrgencyUrgent, constants.ImportanceImportant, true
	case QuadrantSchedule:
		return constants.UrgencyNotUrgent, constants.ImportanceImportant, true
	case QuadrantDelegate:
		return constants.UrgencyUrgent, constants.ImportanceNotImportant, true
	case QuadrantDrop:
		return constants.UrgencyNotUrgent, constants.ImportanceNotImportant, true
	default:
		return "", "", false
	}
}

func QuadrantLabel(q int) string {
	return quadrantLabels[q]
}

func UrgencyWeight(u constants.Urgency) int {
	if u == constants.UrgencyUrgent {
		return 2
	}
	return 1
}

func ImportanceWeight(i constants.Importance) int {
	if i == constants.ImportanceImportant {
		return 2
	}
	return 1
}

// IsOverdue reports whether the task's deadline has passed at now. An all-day
// task's deadline is a calendar day, so both instants are converted to loc
// before comparing civil dates; a timed task compares raw instants. Completed
// tasks and tasks without a due date are never overdue.
func IsOverdue(t *model.Task, now time.Time, loc *time.Location) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}

	if t.IsAllDay {
		ny, nm, nd := now.In(loc).Date()
		dy, dm, dd := t.DueDate.In(loc).Date()
		nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
		dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
		return nowDay.After(dueDay)
	}

	return now.After(*t.DueDate)
}

// EstimatedHoursDisplay renders a decimal hour estimate as "2h30m", "2h" or
// "30m". Minutes are rounded; a full 60 carries into the hour. Returns nil
// for nil input and for estimates that round to zero.
func EstimatedHoursDisplay(hours *float64) *string {
	if hours == nil {
		return nil
	}

	h := int(*hours)
	m := int(math.Round((*hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}

	var s string
	switch {
	case h > 0 && m > 0:
		s = fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		s = fmt.Sprintf("%dh", h)
	case m > 0:
		s = fmt.Sprintf("%dm", m)
	default:
		return nil
	}

	return &s
}

func Classify(t *model.Task, now time.Time, loc *time.Location) Classification {
	return Classification{
		Quadrant:              Quadrant(t.Urgency, t.Importance),
		UrgencyWeight:         UrgencyWeight(t.Urgency),
		ImportanceWeight:      ImportanceWeight(t.Importance),
		IsOverdue:             IsOverdue(t, now, loc),
		EstimatedHoursDisplay: EstimatedHoursDisplay(t.EstimatedHours),
	}
}
