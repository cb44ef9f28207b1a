package errors

import "fmt"

// QuotaExceededError rejects a creation that would push an Eisenhower
// quadrant past its open-task cap.
type QuotaExceededError struct {
	Quadrant     int
	Label        string
	CurrentCount int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf(
		"%s already holds %d open tasks; complete or delete one before adding more",
		e.Label, e.CurrentCount,
	)
}
