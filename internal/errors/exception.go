// Package errors defines the service's error kinds. Each carries the HTTP
// status it maps to, so transport code never switches on error identity.
package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func badRequest(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusBadRequest}
}

var (
	ErrTaskNotFound   = &Exception{Message: "task not found", StatusCode: http.StatusNotFound}
	ErrOptimisticLock = &Exception{Message: "task was modified concurrently, retry the update", StatusCode: http.StatusConflict}
)

// StatusCode extracts the HTTP status from an error, defaulting to 500 for
// anything that is not an Exception.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
