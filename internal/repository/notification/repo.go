package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/coopstead/portal/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification and returns it with the
// generated id and creation timestamp filled in.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	query := `
		INSERT INTO notifications (
		    user_id, type, title, content, link, expires_at, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
    `

	metadata, err := marshalMetadata(n.Metadata)
	if err != nil {
		return model.Notification{}, err
	}

	err = r.db.QueryRowContext(
		ctx, query, n.UserID, n.Type, n.Title, n.Content, n.Link, n.ExpiresAt, metadata,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// ListByUser retrieves all notifications for one user ordered by
// creation time descending. An empty result is not an error.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, type, title, content, link, read, created_at, expires_at, metadata
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead sets the read flag on one notification and returns the
// updated row.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1
		RETURNING id, user_id, type, title, content, link, read, created_at, expires_at, metadata;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return n, nil
}

// MarkAllRead sets the read flag on every unread notification of one
// user and returns the updated rows.
func (r *Repository) MarkAllRead(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE user_id = $1 AND read = FALSE
		RETURNING id, user_id, type, title, content, link, read, created_at, expires_at, metadata;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// DeleteNotification removes a notification by its ID.
func (r *Repository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(row scanner) (model.Notification, error) {
	var (
		n         model.Notification
		link      sql.NullString
		expiresAt sql.NullTime
		metadata  []byte
	)

	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Content, &link, &n.Read, &n.CreatedAt, &expiresAt, &metadata)
	if err != nil {
		return model.Notification{}, err
	}

	n.Link = link.String
	if expiresAt.Valid {
		n.ExpiresAt = &expiresAt.Time
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &n.Metadata); err != nil {
			return model.Notification{}, fmt.Errorf("failed to decode notification metadata: %w", err)
		}
	}

	return n, nil
}

func marshalMetadata(metadata map[string]string) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}

	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification metadata: %w", err)
	}

	return b, nil
}
