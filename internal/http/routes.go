package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-matrix-system.com/task-matrix/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/overdue", h.OverdueTasks)
	e.GET("/tasks/urgent", h.UrgentTasks)
	e.GET("/tasks/critical", h.CriticalTasks)
	e.GET("/tasks/completed", h.CompletedTasks)
	e.GET("/tasks/pending", h.PendingTasks)
	e.GET("/tasks/eisenhower_matrix", h.EisenhowerMatrix)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.PATCH("/tasks/:id/toggle_completed", h.ToggleCompleted)
}
