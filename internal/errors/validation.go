package errors

var (
	ErrTitleRequired         = badRequest("title is required")
	ErrTitleTooLong          = badRequest("title must be at most 200 characters")
	ErrInvalidUrgency        = badRequest("urgency must be one of: urgent, not_urgent")
	ErrInvalidImportance     = badRequest("importance must be one of: important, not_important")
	ErrInvalidEstimatedHours = badRequest("estimated_hours must be between 0 and 999.99")
)
