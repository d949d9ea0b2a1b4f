package forum

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

var ErrTopicNotFound = errors.New("topic not found")

// Repository provides methods to interact with the forum_* tables.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListCategories retrieves all forum categories in display order.
func (r *Repository) ListCategories(ctx context.Context) ([]model.ForumCategory, error) {
	query := `
		SELECT id, name, description, order_position
		FROM forum_categories
		ORDER BY order_position;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list forum categories: %w", err)
	}
	defer rows.Close()

	var categories []model.ForumCategory
	for rows.Next() {
		var c model.ForumCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.OrderPosition); err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ListTopics retrieves topics, pinned first then by last activity,
// optionally filtered by category.
func (r *Repository) ListTopics(ctx context.Context, categoryID uuid.UUID) ([]model.ForumTopic, error) {
	query := `
		SELECT id, category_id, title, content, status, pinned, views, tags,
		       last_reply_at, last_reply_by, created_by, created_at, updated_at
		FROM forum_topics
		WHERE $1::uuid IS NULL OR category_id = $1
		ORDER BY pinned DESC, last_reply_at DESC NULLS LAST, created_at DESC;
    `

	filter := uuid.NullUUID{UUID: categoryID, Valid: categoryID != uuid.Nil}

	rows, err := r.db.QueryContext(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var topics []model.ForumTopic
	for rows.Next() {
		var (
			t           model.ForumTopic
			lastReplyAt sql.NullTime
			lastReplyBy uuid.NullUUID
		)
		if err := rows.Scan(
			&t.ID, &t.CategoryID, &t.Title, &t.Content, &t.Status, &t.Pinned, &t.Views, pq.Array(&t.Tags),
			&lastReplyAt, &lastReplyBy, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if lastReplyAt.Valid {
			t.LastReplyAt = &lastReplyAt.Time
		}
		if lastReplyBy.Valid {
			t.LastReplyBy = &lastReplyBy.UUID
		}

		topics = append(topics, t)
	}

	return topics, rows.Err()
}

// CreateTopic inserts a new topic and returns its ID.
func (r *Repository) CreateTopic(ctx context.Context, t model.ForumTopic) (uuid.UUID, error) {
	query := `
		INSERT INTO forum_topics (category_id, title, content, status, tags, created_by)
		VALUES ($1, $2, $3, 'open', $4, $5)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, t.CategoryID, t.Title, t.Content, pq.Array(t.Tags), t.CreatedBy).Scan(&t.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create topic: %w", err)
	}

	return t.ID, nil
}

// GetTopic retrieves one topic.
func (r *Repository) GetTopic(ctx context.Context, id uuid.UUID) (model.ForumTopic, error) {
	query := `
		SELECT id, category_id, title, content, status, pinned, views, tags,
		       last_reply_at, last_reply_by, created_by, created_at, updated_at
		FROM forum_topics
		WHERE id = $1;
    `

	var (
		t           model.ForumTopic
		lastReplyAt sql.NullTime
		lastReplyBy uuid.NullUUID
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.CategoryID, &t.Title, &t.Content, &t.Status, &t.Pinned, &t.Views, pq.Array(&t.Tags),
		&lastReplyAt, &lastReplyBy, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ForumTopic{}, ErrTopicNotFound
		}

		return model.ForumTopic{}, fmt.Errorf("failed to get topic: %w", err)
	}
	if lastReplyAt.Valid {
		t.LastReplyAt = &lastReplyAt.Time
	}
	if lastReplyBy.Valid {
		t.LastReplyBy = &lastReplyBy.UUID
	}

	return t, nil
}

// IncrementViews bumps a topic's view counter.
func (r *Repository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE forum_topics
		SET views = views + 1
		WHERE id = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}

	return nil
}

// ListReplies retrieves a topic's replies in chronological order.
func (r *Repository) ListReplies(ctx context.Context, topicID uuid.UUID) ([]model.ForumReply, error) {
	query := `
		SELECT id, topic_id, content, parent_id, status, created_by, created_at
		FROM forum_replies
		WHERE topic_id = $1
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer rows.Close()

	var replies []model.ForumReply
	for rows.Next() {
		var (
			reply    model.ForumReply
			parentID uuid.NullUUID
		)
		if err := rows.Scan(&reply.ID, &reply.TopicID, &reply.Content, &parentID, &reply.Status, &reply.CreatedBy, &reply.CreatedAt); err != nil {
			return nil, err
		}
		if parentID.Valid {
			reply.ParentID = &parentID.UUID
		}

		replies = append(replies, reply)
	}

	return replies, rows.Err()
}

// CreateReply inserts a reply and updates the parent topic's last-reply
// tracking columns.
func (r *Repository) CreateReply(ctx context.Context, reply model.ForumReply) (uuid.UUID, error) {
	query := `
		INSERT INTO forum_replies (topic_id, content, parent_id, status, created_by)
		VALUES ($1, $2, $3, 'active', $4)
		RETURNING id;
    `

	var parentID any
	if reply.ParentID != nil {
		parentID = *reply.ParentID
	}

	err := r.db.QueryRowContext(ctx, query, reply.TopicID, reply.Content, parentID, reply.CreatedBy).Scan(&reply.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create reply: %w", err)
	}

	touch := `
		UPDATE forum_topics
		SET last_reply_at = NOW(), last_reply_by = $2, updated_at = NOW()
		WHERE id = $1;
    `

	if _, err := r.db.ExecContext(ctx, touch, reply.TopicID, reply.CreatedBy); err != nil {
		return uuid.Nil, fmt.Errorf("failed to touch topic: %w", err)
	}

	return reply.ID, nil
}

// CreateAttachments inserts attachment rows for a topic or reply.
func (r *Repository) CreateAttachments(ctx context.Context, attachments []model.ForumAttachment) error {
	query := `
		INSERT INTO forum_attachments (topic_id, reply_id, url, name, size, type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
    `

	for _, a := range attachments {
		var topicID, replyID any
		if a.TopicID != nil {
			topicID = *a.TopicID
		}
		if a.ReplyID != nil {
			replyID = *a.ReplyID
		}

		if _, err := r.db.ExecContext(ctx, query, topicID, replyID, a.URL, a.Name, a.Size, a.Type, a.CreatedBy); err != nil {
			return fmt.Errorf("failed to create attachment: %w", err)
		}
	}

	return nil
}

// ListAttachments retrieves attachments for a topic, replies included.
func (r *Repository) ListAttachments(ctx context.Context, topicID uuid.UUID) ([]model.ForumAttachment, error) {
	query := `
		SELECT a.id, a.topic_id, a.reply_id, a.url, a.name, a.size, a.type, a.created_by, a.created_at
		FROM forum_attachments a
		LEFT JOIN forum_replies rp ON rp.id = a.reply_id
		WHERE a.topic_id = $1 OR rp.topic_id = $1
		ORDER BY a.created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []model.ForumAttachment
	for rows.Next() {
		var (
			a       model.ForumAttachment
			topicID uuid.NullUUID
			replyID uuid.NullUUID
		)
		if err := rows.Scan(&a.ID, &topicID, &replyID, &a.URL, &a.Name, &a.Size, &a.Type, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		if topicID.Valid {
			a.TopicID = &topicID.UUID
		}
		if replyID.Valid {
			a.ReplyID = &replyID.UUID
		}

		attachments = append(attachments, a)
	}

	return attachments, rows.Err()
}

// CreateReport files a moderation report against a topic or reply.
func (r *Repository) CreateReport(ctx context.Context, report model.ForumReport) (uuid.UUID, error) {
	query := `
		INSERT INTO forum_reports (content_type, content_id, reason, reported_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, report.ContentType, report.ContentID, report.Reason, report.ReportedBy).Scan(&report.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report.ID, nil
}
