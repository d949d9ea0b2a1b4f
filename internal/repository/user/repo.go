package user

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
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Repository provides methods to interact with the users table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user and returns its ID.
func (r *Repository) CreateUser(ctx context.Context, u model.User) (uuid.UUID, error) {
	query := `
		INSERT INTO users (
		    email, password_hash, first_name, last_name, role, unit, phone
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.Unit, u.Phone,
	).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return uuid.Nil, ErrEmailTaken
		}

		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u.ID, nil
}

// GetByEmail retrieves a user by email, password hash included.
func (r *Repository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, unit, phone, telegram_chat_id, created_at
		FROM users
		WHERE email = $1;
    `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, unit, phone, telegram_chat_id, created_at
		FROM users
		WHERE id = $1;
    `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// ListByRoles retrieves all users whose role is in roles; an empty
// roles slice means every user. Used to fan announcements out to their
// target audience.
func (r *Repository) ListByRoles(ctx context.Context, roles []string) ([]model.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, unit, phone, telegram_chat_id, created_at
		FROM users
		WHERE cardinality($1::text[]) = 0 OR role = ANY($1);
    `

	if roles == nil {
		// A nil slice would bind as SQL NULL and match nothing.
		roles = []string{}
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(roles))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var (
			u        model.User
			unit     sql.NullString
			phone    sql.NullString
			telegram sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &unit, &phone, &telegram, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Unit, u.Phone, u.TelegramChatID = unit.String, phone.String, telegram.String

		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *Repository) scanUser(row *sql.Row) (model.User, error) {
	var (
		u        model.User
		unit     sql.NullString
		phone    sql.NullString
		telegram sql.NullString
	)

	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &unit, &phone, &telegram, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	u.Unit, u.Phone, u.TelegramChatID = unit.String, phone.String, telegram.String

	return u, nil
}
