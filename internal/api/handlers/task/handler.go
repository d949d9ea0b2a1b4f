package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/api/dto"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/model"
	taskrepo "github.com/coopstead/portal/internal/repository/task"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/task/mock.go -package=mocks

type taskService interface {
	Create(ctx context.Context, t model.Task) (uuid.UUID, error)
	List(ctx context.Context, f taskrepo.Filter) ([]model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (model.Task, error)
	Complete(ctx context.Context, id uuid.UUID, completedBy uuid.UUID, proof model.CompletionProof) error
}

type Handler struct {
	service   taskService
	validator *validator.Validate
}

func NewHandler(service taskService, v *validator.Validate) *Handler {
	return &Handler{service: service, validator: v}
}

// List returns tasks filtered by the optional ?floor=, ?assignee= and
// ?status= query parameters.
func (h *Handler) List(c *ginext.Context) {
	filter := taskrepo.Filter{
		Floor:  c.Query("floor"),
		Status: c.Query("status"),
	}

	if assignee := c.Query("assignee"); assignee != "" {
		id, err := uuid.Parse(assignee)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid assignee id"))
			return
		}
		filter.Assignee = id
	}

	tasks, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list tasks")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, tasks)
}

func (h *Handler) Get(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid task id"))
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, taskrepo.ErrTaskNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("task not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("task_id", id.String()).Msg("failed to get task")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, t)
}

// Create assigns a task and notifies the assignees. Restricted to board
// and admin roles by the router.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateTaskRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid due date, expected YYYY-MM-DD"))
		return
	}

	assignedTo := make([]uuid.UUID, 0, len(req.AssignedTo))
	for _, raw := range req.AssignedTo {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid assignee id"))
			return
		}
		assignedTo = append(assignedTo, id)
	}

	id, err := h.service.Create(c.Request.Context(), model.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  assignedTo,
		DueDate:     dueDate,
		Status:      model.TaskStatusPending,
		Floor:       req.Floor,
		CreatedBy:   middleware.UserID(c),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create task")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Complete marks a task done with the photo proof.
func (h *Handler) Complete(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid task id"))
		return
	}

	var req dto.CompleteTaskRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	err = h.service.Complete(c.Request.Context(), id, middleware.UserID(c), model.CompletionProof{
		PhotoURL:    req.PhotoURL,
		Comment:     req.Comment,
		CompletedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, taskrepo.ErrTaskNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("task not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("task_id", id.String()).Msg("failed to complete task")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "task completed")
}
