package communication

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/coopstead/portal/internal/model"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrFAQItemNotFound      = errors.New("faq item not found")
)

// Repository provides methods to interact with the announcements and
// faq_* tables.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateAnnouncement inserts a new announcement and returns its ID.
func (r *Repository) CreateAnnouncement(ctx context.Context, a model.Announcement) (uuid.UUID, error) {
	query := `
		INSERT INTO announcements (
		    title, content, priority, category, expires_at, target_audience,
		    acknowledgment_required, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, a.Title, a.Content, a.Priority, a.Category, a.ExpiresAt,
		pq.Array(a.TargetAudience), a.AcknowledgmentRequired, a.CreatedBy,
	).Scan(&a.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a.ID, nil
}

// ListAnnouncements retrieves all announcements, newest first, with
// acknowledgment user ids aggregated in.
func (r *Repository) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	query := `
		SELECT a.id, a.title, a.content, a.priority, a.category, a.expires_at,
		       a.target_audience, a.acknowledgment_required, a.created_by, a.created_at,
		       COALESCE(array_agg(ack.user_id) FILTER (WHERE ack.user_id IS NOT NULL), '{}')
		FROM announcements a
		LEFT JOIN announcement_acknowledgments ack ON ack.announcement_id = a.id
		GROUP BY a.id
		ORDER BY a.created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []model.Announcement
	for rows.Next() {
		var (
			a         model.Announcement
			expiresAt sql.NullTime
			ackedBy   []string
		)
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Content, &a.Priority, &a.Category, &expiresAt,
			pq.Array(&a.TargetAudience), &a.AcknowledgmentRequired, &a.CreatedBy, &a.CreatedAt,
			pq.Array(&ackedBy),
		); err != nil {
			return nil, err
		}
		if expiresAt.Valid {
			a.ExpiresAt = &expiresAt.Time
		}
		for _, s := range ackedBy {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("failed to parse acknowledgment user id: %w", err)
			}
			a.AcknowledgedBy = append(a.AcknowledgedBy, id)
		}

		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// Acknowledge records that a user has read an announcement. Repeat
// acknowledgments are absorbed.
func (r *Repository) Acknowledge(ctx context.Context, announcementID, userID uuid.UUID) error {
	query := `
		INSERT INTO announcement_acknowledgments (announcement_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (announcement_id, user_id) DO NOTHING;
    `

	if _, err := r.db.ExecContext(ctx, query, announcementID, userID); err != nil {
		return fmt.Errorf("failed to acknowledge announcement: %w", err)
	}

	return nil
}

// ListFAQCategories retrieves FAQ categories in display order.
func (r *Repository) ListFAQCategories(ctx context.Context) ([]model.FAQCategory, error) {
	query := `
		SELECT id, name, description, "order"
		FROM faq_categories
		ORDER BY "order";
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq categories: %w", err)
	}
	defer rows.Close()

	var categories []model.FAQCategory
	for rows.Next() {
		var c model.FAQCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Order); err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ListFAQItems retrieves published items, newest first, optionally
// filtered by category.
func (r *Repository) ListFAQItems(ctx context.Context, categoryID uuid.UUID) ([]model.FAQItem, error) {
	query := `
		SELECT id, category_id, question, answer, status, votes, tags, created_at, updated_at, updated_by
		FROM faq_items
		WHERE status = 'published' AND ($1::uuid IS NULL OR category_id = $1)
		ORDER BY created_at DESC;
    `

	filter := uuid.NullUUID{UUID: categoryID, Valid: categoryID != uuid.Nil}

	rows, err := r.db.QueryContext(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq items: %w", err)
	}
	defer rows.Close()

	var items []model.FAQItem
	for rows.Next() {
		var item model.FAQItem
		if err := rows.Scan(
			&item.ID, &item.CategoryID, &item.Question, &item.Answer, &item.Status,
			&item.Votes, pq.Array(&item.Tags), &item.CreatedAt, &item.UpdatedAt, &item.UpdatedBy,
		); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// UpsertVote records a member's vote on an item, replacing any earlier
// vote by the same member.
func (r *Repository) UpsertVote(ctx context.Context, vote model.FAQVote) error {
	query := `
		INSERT INTO faq_votes (faq_item_id, user_id, vote_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (faq_item_id, user_id) DO UPDATE SET vote_type = EXCLUDED.vote_type;
    `

	if _, err := r.db.ExecContext(ctx, query, vote.FAQItemID, vote.UserID, vote.VoteType); err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}

	return nil
}

// TallyVotes recomputes an item's vote total from individual votes and
// stores it on the item. Returns the new total.
func (r *Repository) TallyVotes(ctx context.Context, itemID uuid.UUID) (int, error) {
	query := `
		UPDATE faq_items
		SET votes = (
		    SELECT COALESCE(SUM(CASE WHEN vote_type = 'up' THEN 1 ELSE -1 END), 0)
		    FROM faq_votes
		    WHERE faq_item_id = $1
		)
		WHERE id = $1
		RETURNING votes;
    `

	var total int
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrFAQItemNotFound
		}

		return 0, fmt.Errorf("failed to tally votes: %w", err)
	}

	return total, nil
}

// CreateSuggestion files a member's question for the FAQ editors.
func (r *Repository) CreateSuggestion(ctx context.Context, s model.FAQSuggestion) (uuid.UUID, error) {
	query := `
		INSERT INTO faq_suggestions (question, context, status, submitted_by)
		VALUES ($1, $2, 'pending', $3)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, s.Question, s.Context, s.SubmittedBy).Scan(&s.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	return s.ID, nil
}
