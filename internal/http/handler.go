package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"task-matrix-system.com/task-matrix/internal/constants"
	dto "task-matrix-system.com/task-matrix/internal/data_models"
	apperr "task-matrix-system.com/task-matrix/internal/errors"
	"task-matrix-system.com/task-matrix/internal/http/validators"
	model "task-matrix-system.com/task-matrix/internal/models"
	repository "task-matrix-system.com/task-matrix/internal/repositories"
	"task-matrix-system.com/task-matrix/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return h.writeError(c, err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, h.toResponse(task))
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.toResponse(task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": h.toResponses(tasks),
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return h.writeError(c, err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.toResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleCompleted(c echo.Context) error {
	task, err := h.taskService.ToggleCompleted(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.toResponse(task))
}

func (h *Handler) OverdueTasks(c echo.Context) error {
	return h.listView(c, h.taskService.OverdueTasks)
}

func (h *Handler) UrgentTasks(c echo.Context) error {
	return h.listView(c, h.taskService.UrgentTasks)
}

func (h *Handler) CriticalTasks(c echo.Context) error {
	return h.listView(c, h.taskService.CriticalTasks)
}

func (h *Handler) CompletedTasks(c echo.Context) error {
	return h.listView(c, h.taskService.CompletedTasks)
}

func (h *Handler) PendingTasks(c echo.Context) error {
	return h.listView(c, h.taskService.PendingTasks)
}

func (h *Handler) EisenhowerMatrix(c echo.Context) error {
	view, err := h.taskService.Matrix(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MatrixResponse{
		Quadrant1: h.toResponses(view.Quadrant1),
		Quadrant2: h.toResponses(view.Quadrant2),
		Quadrant3: h.toResponses(view.Quadrant3),
		Quadrant4: h.toResponses(view.Quadrant4),
	})
}

func (h *Handler) listView(c echo.Context, view func(context.Context) ([]model.Task, error)) error {
	tasks, err := view(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": h.toResponses(tasks),
	})
}

func (h *Handler) writeError(c echo.Context, err error) error {
	var quotaErr *apperr.QuotaExceededError
	if errors.As(err, &quotaErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":         quotaErr.Error(),
			"quadrant":      quotaErr.Label,
			"quadrant_id":   quotaErr.Quadrant,
			"current_count": quotaErr.CurrentCount,
		})
	}

	return c.JSON(apperr.StatusCode(err), echo.Map{"error": errorMessage(err)})
}

func errorMessage(err error) string {
	var appErr *apperr.Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

func parseListFilter(c echo.Context) repository.ListFilter {
	f := repository.ListFilter{Sort: c.QueryParam("sort")}

	if v := c.QueryParam("completed"); v != "" {
		completed := strings.EqualFold(v, "true")
		f.Completed = &completed
	}
	if v := c.QueryParam("urgency"); v != "" {
		f.Urgency = constants.Urgency(v)
	}
	if v := c.QueryParam("importance"); v != "" {
		f.Importance = constants.Importance(v)
	}
	if v := c.QueryParam("quadrant"); v != "" {
		// A malformed quadrant applies no filter rather than failing.
		if q, err := strconv.Atoi(v); err == nil {
			f.Quadrant = q
		}
	}

	return f
}

func (h *Handler) toResponse(t *model.Task) dto.TaskResponse {
	return dto.NewTaskResponse(t, h.taskService.Classify(t))
}

func (h *Handler) toResponses(tasks []model.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, h.toResponse(&tasks[i]))
	}
	return out
}
