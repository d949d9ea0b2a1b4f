package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/repository/task"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/task/mock.go -package=mocks

type taskRepository interface {
	CreateTask(ctx context.Context, t model.Task) (uuid.UUID, error)
	ListTasks(ctx context.Context, f task.Filter) ([]model.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Task, error)
	Complete(ctx context.Context, id uuid.UUID, proof model.CompletionProof) error
}

type notifier interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
}

// Service wraps the task repository and notifies assignees on
// assignment.
type Service struct {
	repo     taskRepository
	notifier notifier
}

func NewService(repo taskRepository, notifier notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create persists a task and notifies every assignee except the
// creator. Fan-out is best-effort.
func (s *Service) Create(ctx context.Context, t model.Task) (uuid.UUID, error) {
	id, err := s.repo.CreateTask(ctx, t)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create task: %w", err)
	}

	for _, assignee := range t.AssignedTo {
		if assignee == t.CreatedBy {
			continue
		}

		_, err := s.notifier.Create(ctx, model.Notification{
			UserID:  assignee,
			Type:    model.NotificationTypeTask,
			Title:   "New task assigned",
			Content: t.Title,
			Link:    "/tasks/" + id.String(),
		})
		if err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", assignee.String()).Msg("failed to notify task assignee")
		}
	}

	return id, nil
}

// List returns tasks matching the filter.
func (s *Service) List(ctx context.Context, f task.Filter) ([]model.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// Get returns one task.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}

	return t, nil
}

// Complete marks a task done with its proof and notifies the task
// creator.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, completedBy uuid.UUID, proof model.CompletionProof) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	if err := s.repo.Complete(ctx, id, proof); err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	if t.CreatedBy != completedBy {
		_, err := s.notifier.Create(ctx, model.Notification{
			UserID:  t.CreatedBy,
			Type:    model.NotificationTypeTask,
			Title:   "Task completed",
			Content: t.Title,
			Link:    "/tasks/" + id.String(),
		})
		if err != nil {
			zlog.Logger.Error().Err(err).Str("task_id", id.String()).Msg("failed to notify task creator")
		}
	}

	return nil
}
