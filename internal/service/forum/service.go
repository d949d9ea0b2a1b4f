package forum

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/forum/mock.go -package=mocks

type forumRepository interface {
	ListCategories(ctx context.Context) ([]model.ForumCategory, error)
	ListTopics(ctx context.Context, categoryID uuid.UUID) ([]model.ForumTopic, error)
	CreateTopic(ctx context.Context, t model.ForumTopic) (uuid.UUID, error)
	GetTopic(ctx context.Context, id uuid.UUID) (model.ForumTopic, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	ListReplies(ctx context.Context, topicID uuid.UUID) ([]model.ForumReply, error)
	CreateReply(ctx context.Context, reply model.ForumReply) (uuid.UUID, error)
	CreateAttachments(ctx context.Context, attachments []model.ForumAttachment) error
	ListAttachments(ctx context.Context, topicID uuid.UUID) ([]model.ForumAttachment, error)
	CreateReport(ctx context.Context, report model.ForumReport) (uuid.UUID, error)
}

type notifier interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
}

// TopicView is a topic with its replies and attachments, the shape the
// topic page renders.
type TopicView struct {
	Topic       model.ForumTopic       `json:"topic"`
	Replies     []model.ForumReply     `json:"replies"`
	Attachments []model.ForumAttachment `json:"attachments"`
}

// Service wraps the forum repository and raises a notification for the
// topic author when someone else replies.
type Service struct {
	repo     forumRepository
	notifier notifier
}

func NewService(repo forumRepository, notifier notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// ListCategories returns the categories in display order.
func (s *Service) ListCategories(ctx context.Context) ([]model.ForumCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// ListTopics returns topics, optionally filtered by category
// (uuid.Nil means all), pinned first then by last activity.
func (s *Service) ListTopics(ctx context.Context, categoryID uuid.UUID) ([]model.ForumTopic, error) {
	topics, err := s.repo.ListTopics(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// GetTopic returns one topic with replies and attachments, counting the
// view. A failed view bump is logged, never surfaced.
func (s *Service) GetTopic(ctx context.Context, id uuid.UUID) (TopicView, error) {
	topic, err := s.repo.GetTopic(ctx, id)
	if err != nil {
		return TopicView{}, fmt.Errorf("get topic: %w", err)
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		zlog.Logger.Error().Err(err).Str("topic_id", id.String()).Msg("failed to increment topic views")
	}

	replies, err := s.repo.ListReplies(ctx, id)
	if err != nil {
		return TopicView{}, fmt.Errorf("list replies: %w", err)
	}

	attachments, err := s.repo.ListAttachments(ctx, id)
	if err != nil {
		return TopicView{}, fmt.Errorf("list attachments: %w", err)
	}

	return TopicView{Topic: topic, Replies: replies, Attachments: attachments}, nil
}

// CreateTopic creates a topic and its attachments.
func (s *Service) CreateTopic(ctx context.Context, topic model.ForumTopic, attachments []model.ForumAttachment) (uuid.UUID, error) {
	id, err := s.repo.CreateTopic(ctx, topic)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create topic: %w", err)
	}

	for i := range attachments {
		attachments[i].TopicID = &id
		attachments[i].CreatedBy = topic.CreatedBy
	}
	if err := s.repo.CreateAttachments(ctx, attachments); err != nil {
		return uuid.Nil, fmt.Errorf("create topic attachments: %w", err)
	}

	return id, nil
}

// CreateReply creates a reply with its attachments and notifies the
// topic author, unless the author replied to their own topic. The
// notification is best-effort.
func (s *Service) CreateReply(ctx context.Context, reply model.ForumReply, attachments []model.ForumAttachment) (uuid.UUID, error) {
	topic, err := s.repo.GetTopic(ctx, reply.TopicID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create reply: %w", err)
	}

	id, err := s.repo.CreateReply(ctx, reply)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create reply: %w", err)
	}

	for i := range attachments {
		attachments[i].ReplyID = &id
		attachments[i].CreatedBy = reply.CreatedBy
	}
	if err := s.repo.CreateAttachments(ctx, attachments); err != nil {
		return uuid.Nil, fmt.Errorf("create reply attachments: %w", err)
	}

	if topic.CreatedBy != reply.CreatedBy {
		_, err := s.notifier.Create(ctx, model.Notification{
			UserID:  topic.CreatedBy,
			Type:    model.NotificationTypeForum,
			Title:   "New reply to your topic",
			Content: fmt.Sprintf("Someone replied to %q", topic.Title),
			Link:    "/forum/topics/" + topic.ID.String(),
		})
		if err != nil {
			zlog.Logger.Error().Err(err).Str("topic_id", topic.ID.String()).Msg("failed to notify topic author")
		}
	}

	return id, nil
}

// Report flags a topic or reply for moderation.
func (s *Service) Report(ctx context.Context, report model.ForumReport) (uuid.UUID, error) {
	id, err := s.repo.CreateReport(ctx, report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("report content: %w", err)
	}

	return id, nil
}
