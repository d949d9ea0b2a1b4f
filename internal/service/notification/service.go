package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/changefeed"
	"github.com/coopstead/portal/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (model.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}

type eventFeed interface {
	Publish(ev changefeed.Event, strategy retry.Strategy) error
}

// Service persists notifications and mirrors every write onto the
// change feed: an insert event after create, an update echo after each
// mark-read. Deletes publish nothing, removal is local to the caller.
type Service struct {
	repo     notificationRepository
	feed     eventFeed
	strategy retry.Strategy
}

func NewService(repo notificationRepository, feed eventFeed, strategy retry.Strategy) *Service {
	return &Service{repo: repo, feed: feed, strategy: strategy}
}

// Create persists a notification and publishes the insert event. A
// publish failure does not fail the create; live delivery is
// best-effort on top of the durable row.
func (s *Service) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	s.publish(changefeed.Event{Kind: changefeed.EventInsert, Notification: created})

	return created, nil
}

// ListByUser returns the user's notifications, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead marks one notification read and echoes the updated row onto
// the feed.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	updated, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	s.publish(changefeed.Event{Kind: changefeed.EventUpdate, Notification: updated})

	return nil
}

// MarkAllRead marks every unread notification of one user read and
// echoes each updated row onto the feed.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	updated, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	for _, n := range updated {
		s.publish(changefeed.Event{Kind: changefeed.EventUpdate, Notification: n})
	}

	return nil
}

// Delete removes a notification. No event is published.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteNotification(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

func (s *Service) publish(ev changefeed.Event) {
	if err := s.feed.Publish(ev, s.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", ev.Notification.ID.String()).Msg("failed to publish change event")
	}
}
