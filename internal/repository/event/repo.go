package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/coopstead/portal/internal/model"
)

// Repository provides methods to interact with the events table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateEvent inserts a calendar event and returns its ID.
func (r *Repository) CreateEvent(ctx context.Context, e model.Event) (uuid.UUID, error) {
	query := `
		INSERT INTO events (title, description, date, start_time, end_time, location, type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, e.Title, e.Description, e.Date, e.StartTime, e.EndTime, e.Location, e.Type, e.CreatedBy,
	).Scan(&e.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create event: %w", err)
	}

	return e.ID, nil
}

// ListByMonth retrieves the events of one calendar month in date order.
func (r *Repository) ListByMonth(ctx context.Context, year int, month time.Month) ([]model.Event, error) {
	query := `
		SELECT id, title, description, date, start_time, end_time, location, type, created_by, created_at
		FROM events
		WHERE date >= $1 AND date < $2
		ORDER BY date, start_time;
    `

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime, &e.Location, &e.Type, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}

		events = append(events, e)
	}

	return events, rows.Err()
}
