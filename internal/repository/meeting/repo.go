package meeting

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
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrResolutionNotFound = errors.New("resolution not found")
)

// Repository provides methods to interact with the meetings, agenda,
// RSVP and resolutions tables.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateMeeting inserts a meeting and returns its ID.
func (r *Repository) CreateMeeting(ctx context.Context, m model.Meeting) (uuid.UUID, error) {
	query := `
		INSERT INTO meetings (title, type, date, start_time, end_time, location, status, documents, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, 'scheduled', $7, $8)
		RETURNING id;
    `

	docs := make([]string, 0, len(m.Documents))
	for _, id := range m.Documents {
		docs = append(docs, id.String())
	}

	err := r.db.QueryRowContext(
		ctx, query, m.Title, m.Type, m.Date, m.StartTime, m.EndTime, m.Location, pq.Array(docs), m.CreatedBy,
	).Scan(&m.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return m.ID, nil
}

// ListMeetings retrieves all meetings, upcoming first.
func (r *Repository) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	query := `
		SELECT id, title, type, date, start_time, end_time, location, status, documents, created_by, created_at
		FROM meetings
		ORDER BY date DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	var meetings []model.Meeting
	for rows.Next() {
		var (
			m    model.Meeting
			docs []string
		)
		if err := rows.Scan(&m.ID, &m.Title, &m.Type, &m.Date, &m.StartTime, &m.EndTime, &m.Location, &m.Status, pq.Array(&docs), &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		for _, s := range docs {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("failed to parse document id: %w", err)
			}
			m.Documents = append(m.Documents, id)
		}

		meetings = append(meetings, m)
	}

	return meetings, rows.Err()
}

// GetByID retrieves one meeting with its agenda.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Meeting, error) {
	query := `
		SELECT id, title, type, date, start_time, end_time, location, status, documents, created_by, created_at
		FROM meetings
		WHERE id = $1;
    `

	var (
		m    model.Meeting
		docs []string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Title, &m.Type, &m.Date, &m.StartTime, &m.EndTime, &m.Location, &m.Status, pq.Array(&docs), &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Meeting{}, ErrMeetingNotFound
		}

		return model.Meeting{}, fmt.Errorf("failed to get meeting: %w", err)
	}
	for _, s := range docs {
		docID, err := uuid.Parse(s)
		if err != nil {
			return model.Meeting{}, fmt.Errorf("failed to parse document id: %w", err)
		}
		m.Documents = append(m.Documents, docID)
	}

	agenda, err := r.listAgenda(ctx, id)
	if err != nil {
		return model.Meeting{}, err
	}
	m.Agenda = agenda

	return m, nil
}

// AddAgendaItem appends an item to a meeting's agenda.
func (r *Repository) AddAgendaItem(ctx context.Context, item model.AgendaItem) (uuid.UUID, error) {
	query := `
		INSERT INTO agenda_items (meeting_id, title, description, duration, presenter, position)
		VALUES ($1, $2, $3, $4, $5,
		        (SELECT COALESCE(MAX(position), 0) + 1 FROM agenda_items WHERE meeting_id = $1))
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, item.MeetingID, item.Title, item.Description, item.Duration, item.Presenter,
	).Scan(&item.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add agenda item: %w", err)
	}

	return item.ID, nil
}

// SaveRSVP records or replaces a member's attendance answer.
func (r *Repository) SaveRSVP(ctx context.Context, rsvp model.RSVP) error {
	query := `
		INSERT INTO meeting_rsvps (meeting_id, user_id, attending, proxy)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (meeting_id, user_id) DO UPDATE SET attending = EXCLUDED.attending, proxy = EXCLUDED.proxy;
    `

	if _, err := r.db.ExecContext(ctx, query, rsvp.MeetingID, rsvp.UserID, rsvp.Attending, rsvp.Proxy); err != nil {
		return fmt.Errorf("failed to save rsvp: %w", err)
	}

	return nil
}

// CreateResolution inserts a draft resolution and returns its ID.
func (r *Repository) CreateResolution(ctx context.Context, res model.Resolution) (uuid.UUID, error) {
	query := `
		INSERT INTO resolutions (meeting_id, title, description, status)
		VALUES ($1, $2, $3, 'draft')
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, res.MeetingID, res.Title, res.Description).Scan(&res.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resolution: %w", err)
	}

	return res.ID, nil
}

// ListResolutions retrieves a meeting's resolutions.
func (r *Repository) ListResolutions(ctx context.Context, meetingID uuid.UUID) ([]model.Resolution, error) {
	query := `
		SELECT id, meeting_id, title, description, votes_for, votes_against, abstentions, status, created_at
		FROM resolutions
		WHERE meeting_id = $1
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resolutions: %w", err)
	}
	defer rows.Close()

	var resolutions []model.Resolution
	for rows.Next() {
		var res model.Resolution
		if err := rows.Scan(&res.ID, &res.MeetingID, &res.Title, &res.Description, &res.VotesFor, &res.VotesAgainst, &res.Abstentions, &res.Status, &res.CreatedAt); err != nil {
			return nil, err
		}

		resolutions = append(resolutions, res)
	}

	return resolutions, rows.Err()
}

// RecordVote adds one ballot to a resolution's tally.
func (r *Repository) RecordVote(ctx context.Context, resolutionID uuid.UUID, ballot string) error {
	var column string
	switch ballot {
	case "for":
		column = "votes_for"
	case "against":
		column = "votes_against"
	case "abstain":
		column = "abstentions"
	default:
		return fmt.Errorf("unknown ballot %q", ballot)
	}

	query := fmt.Sprintf(`
		UPDATE resolutions
		SET %s = %s + 1
		WHERE id = $1;
    `, column, column)

	res, err := r.db.ExecContext(ctx, query, resolutionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrResolutionNotFound
	}

	return nil
}

func (r *Repository) listAgenda(ctx context.Context, meetingID uuid.UUID) ([]model.AgendaItem, error) {
	query := `
		SELECT id, meeting_id, title, description, duration, presenter, position
		FROM agenda_items
		WHERE meeting_id = $1
		ORDER BY position;
    `

	rows, err := r.db.QueryContext(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agenda: %w", err)
	}
	defer rows.Close()

	var items []model.AgendaItem
	for rows.Next() {
		var item model.AgendaItem
		if err := rows.Scan(&item.ID, &item.MeetingID, &item.Title, &item.Description, &item.Duration, &item.Presenter, &item.Position); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
