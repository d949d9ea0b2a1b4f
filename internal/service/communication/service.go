package communication

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/communication/mock.go -package=mocks

type communicationRepository interface {
	CreateAnnouncement(ctx context.Context, a model.Announcement) (uuid.UUID, error)
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	Acknowledge(ctx context.Context, announcementID, userID uuid.UUID) error
	ListFAQCategories(ctx context.Context) ([]model.FAQCategory, error)
	ListFAQItems(ctx context.Context, categoryID uuid.UUID) ([]model.FAQItem, error)
	UpsertVote(ctx context.Context, vote model.FAQVote) error
	TallyVotes(ctx context.Context, itemID uuid.UUID) (int, error)
	CreateSuggestion(ctx context.Context, s model.FAQSuggestion) (uuid.UUID, error)
}

type userRepository interface {
	ListByRoles(ctx context.Context, roles []string) ([]model.User, error)
}

type notifier interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
}

type cache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Service covers announcements and the FAQ. Announcement creation fans
// a notification out to every user in the target audience; FAQ vote
// tallies go through a read-through cache.
type Service struct {
	repo     communicationRepository
	users    userRepository
	notifier notifier
	cache    cache
	strategy retry.Strategy
}

func NewService(repo communicationRepository, users userRepository, notifier notifier, cache cache, strategy retry.Strategy) *Service {
	return &Service{repo: repo, users: users, notifier: notifier, cache: cache, strategy: strategy}
}

// CreateAnnouncement persists the announcement and notifies the target
// audience (every user when the audience list is empty). The creator is
// skipped; a failed fan-out entry is logged and the rest proceeds.
func (s *Service) CreateAnnouncement(ctx context.Context, a model.Announcement) (uuid.UUID, error) {
	id, err := s.repo.CreateAnnouncement(ctx, a)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create announcement: %w", err)
	}

	audience, err := s.users.ListByRoles(ctx, a.TargetAudience)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("announcement_id", id.String()).Msg("failed to resolve announcement audience")
		return id, nil
	}

	for _, u := range audience {
		if u.ID == a.CreatedBy {
			continue
		}

		_, err := s.notifier.Create(ctx, model.Notification{
			UserID:  u.ID,
			Type:    model.NotificationTypeAnnouncement,
			Title:   a.Title,
			Content: a.Content,
			Link:    "/announcements/" + id.String(),
			Metadata: map[string]string{
				"priority": a.Priority,
				"category": a.Category,
			},
		})
		if err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", u.ID.String()).Msg("failed to notify announcement recipient")
		}
	}

	return id, nil
}

// ListAnnouncements returns all announcements, newest first.
func (s *Service) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	announcements, err := s.repo.ListAnnouncements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	return announcements, nil
}

// Acknowledge records that a user has read an announcement. Repeated
// acknowledgments are no-ops.
func (s *Service) Acknowledge(ctx context.Context, announcementID, userID uuid.UUID) error {
	if err := s.repo.Acknowledge(ctx, announcementID, userID); err != nil {
		return fmt.Errorf("acknowledge announcement: %w", err)
	}

	return nil
}

// ListFAQCategories returns the FAQ categories in display order.
func (s *Service) ListFAQCategories(ctx context.Context) ([]model.FAQCategory, error) {
	categories, err := s.repo.ListFAQCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faq categories: %w", err)
	}

	return categories, nil
}

// ListFAQItems returns published FAQ items, optionally filtered by
// category (uuid.Nil means all).
func (s *Service) ListFAQItems(ctx context.Context, categoryID uuid.UUID) ([]model.FAQItem, error) {
	items, err := s.repo.ListFAQItems(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list faq items: %w", err)
	}

	return items, nil
}

// Vote records one member's up/down vote on an FAQ item, a newer vote
// replacing an older one, and returns the recomputed tally. The tally
// is cached for ItemVotes readers.
func (s *Service) Vote(ctx context.Context, vote model.FAQVote) (int, error) {
	if err := s.repo.UpsertVote(ctx, vote); err != nil {
		return 0, fmt.Errorf("record vote: %w", err)
	}

	votes, err := s.repo.TallyVotes(ctx, vote.FAQItemID)
	if err != nil {
		return 0, fmt.Errorf("tally votes: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, voteKey(vote.FAQItemID), votes); err != nil {
		zlog.Logger.Error().Err(err).Str("faq_item_id", vote.FAQItemID.String()).Msg("failed to cache vote tally")
	}

	return votes, nil
}

// ItemVotes returns the vote tally of one FAQ item, served from cache
// when possible.
func (s *Service) ItemVotes(ctx context.Context, itemID uuid.UUID) (int, error) {
	cached, err := s.cache.GetWithRetry(ctx, s.strategy, voteKey(itemID))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("faq_item_id", itemID.String()).Msg("failed to read vote tally from cache")
	}
	if err == nil {
		if votes, convErr := strconv.Atoi(cached); convErr == nil {
			return votes, nil
		}
	}

	votes, err := s.repo.TallyVotes(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("tally votes: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, voteKey(itemID), votes); err != nil {
		zlog.Logger.Error().Err(err).Str("faq_item_id", itemID.String()).Msg("failed to cache vote tally")
	}

	return votes, nil
}

// Suggest files a question proposal for FAQ moderation.
func (s *Service) Suggest(ctx context.Context, suggestion model.FAQSuggestion) (uuid.UUID, error) {
	id, err := s.repo.CreateSuggestion(ctx, suggestion)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create suggestion: %w", err)
	}

	return id, nil
}

func voteKey(itemID uuid.UUID) string {
	return "faq:votes:" + itemID.String()
}
