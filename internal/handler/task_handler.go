package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/middleware"
	"taskdeck/internal/pagination"
	"taskdeck/internal/service"
)

// TaskHandler handles task CRUD endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title string `json:"title" form:"title" validate:"required,max=255"`
}

// ReplaceTaskRequest represents a full task replacement.
type ReplaceTaskRequest struct {
	Title string `json:"title" form:"title" validate:"required,max=255"`
	Done  *bool  `json:"done" form:"done" validate:"required"`
}

// UpdateTaskRequest represents a partial task update.
type UpdateTaskRequest struct {
	Title *string `json:"title" form:"title" validate:"omitempty,max=255"`
	Done  *bool   `json:"done" form:"done"`
}

// TaskListResponse is the list envelope: page of tasks, pagination summary
// and collection navigation links.
type TaskListResponse struct {
	Data       []taskResource     `json:"data"`
	Pagination pagination.Summary `json:"pagination"`
	Links      []Link             `json:"links"`
}

// List godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param query query string false "Title substring filter"
// @Success 200 {object} TaskListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	params, err := pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"))
	if err != nil {
		return apperrors.BadRequest("Invalid query parameters")
	}

	tasks, total, err := h.taskService.List(c.Request().Context(), userID, params, c.QueryParam("query"))
	if err != nil {
		return apperrors.Internal("Error getting tasks")
	}

	data := make([]taskResource, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, newTaskResource(c, task))
	}
	summary := pagination.Summarize(params, total)

	return c.JSON(http.StatusOK, TaskListResponse{
		Data:       data,
		Pagination: summary,
		Links:      pageLinks(c, summary),
	})
}

// Get godoc
// @Summary Get a single task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return apperrors.NotFound("Task not found")
		}
		return apperrors.Internal("Error getting task")
	}

	return c.JSON(http.StatusOK, echo.Map{"data": newTaskResource(c, *task)})
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), userID, req.Title)
	if err != nil {
		return apperrors.Internal("Error creating task")
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/tasks/%d", task.ID))
	return c.JSON(http.StatusCreated, task)
}

// Replace godoc
// @Summary Replace a task in full
// @Tags tasks
// @Accept json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body ReplaceTaskRequest true "Task data"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Replace(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req ReplaceTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.taskService.Replace(c.Request().Context(), userID, id, req.Title, *req.Done); err != nil {
		return mapTaskWriteError(err, "Error updating task")
	}
	return c.NoContent(http.StatusNoContent)
}

// Update godoc
// @Summary Update task fields
// @Tags tasks
// @Accept json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.taskService.Update(c.Request().Context(), userID, id, req.Title, req.Done); err != nil {
		return mapTaskWriteError(err, "Error updating task")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), userID, id); err != nil {
		return mapTaskWriteError(err, "Error deleting task")
	}
	return c.NoContent(http.StatusNoContent)
}

// CollectionNotAllowed rejects unsupported verbs on the collection route.
func (h *TaskHandler) CollectionNotAllowed(c echo.Context) error {
	return apperrors.MethodNotAllowed("GET, POST")
}

// ItemNotAllowed rejects unsupported verbs on the item route.
func (h *TaskHandler) ItemNotAllowed(c echo.Context) error {
	return apperrors.MethodNotAllowed("GET, PUT, PATCH, DELETE")
}

func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest([]apperrors.FieldError{
			{Field: "params.id", Message: "Task id must be numeric"},
		})
	}
	return uint(id), nil
}

func mapTaskWriteError(err error, fallback string) error {
	if errors.Is(err, apperrors.ErrTaskNotFound) {
		return apperrors.NotFound("Task not found")
	}
	return apperrors.Internal(fallback)
}
