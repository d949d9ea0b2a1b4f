package task

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/coopstead/portal/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// Filter narrows ListTasks; zero values mean no filtering on that
// field.
type Filter struct {
	Floor    string
	Assignee uuid.UUID
	Status   string
}

// Repository provides methods to interact with the tasks table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateTask inserts a new task and returns its ID.
func (r *Repository) CreateTask(ctx context.Context, t model.Task) (uuid.UUID, error) {
	query := `
		INSERT INTO tasks (title, description, assigned_to, due_date, status, floor, created_by)
		VALUES ($1, $2, $3, $4, 'pending', $5, $6)
		RETURNING id;
    `

	assigned := make([]string, 0, len(t.AssignedTo))
	for _, id := range t.AssignedTo {
		assigned = append(assigned, id.String())
	}

	err := r.db.QueryRowContext(
		ctx, query, t.Title, t.Description, pq.Array(assigned), t.DueDate, t.Floor, t.CreatedBy,
	).Scan(&t.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create task: %w", err)
	}

	return t.ID, nil
}

// ListTasks retrieves tasks matching the filter, due soonest first.
func (r *Repository) ListTasks(ctx context.Context, f Filter) ([]model.Task, error) {
	query := `
		SELECT id, title, description, assigned_to, due_date, status, floor, completion_proof, created_at, created_by
		FROM tasks
		WHERE ($1 = '' OR floor = $1)
		  AND ($2::uuid IS NULL OR $2::text = ANY(assigned_to))
		  AND ($3 = '' OR status = $3)
		ORDER BY due_date;
    `

	assignee := uuid.NullUUID{UUID: f.Assignee, Valid: f.Assignee != uuid.Nil}

	rows, err := r.db.QueryContext(ctx, query, f.Floor, assignee, f.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// GetByID retrieves one task.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `
		SELECT id, title, description, assigned_to, due_date, status, floor, completion_proof, created_at, created_by
		FROM tasks
		WHERE id = $1;
    `

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrTaskNotFound
		}

		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// Complete marks a task completed and stores its completion proof.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, proof model.CompletionProof) error {
	query := `
		UPDATE tasks
		SET status = 'completed', completion_proof = $2
		WHERE id = $1;
    `

	proofJSON, err := json.Marshal(proof)
	if err != nil {
		return fmt.Errorf("failed to encode completion proof: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, id, proofJSON)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (model.Task, error) {
	var (
		t         model.Task
		assigned  []string
		floor     sql.NullString
		proofJSON []byte
	)

	err := row.Scan(&t.ID, &t.Title, &t.Description, pq.Array(&assigned), &t.DueDate, &t.Status, &floor, &proofJSON, &t.CreatedAt, &t.CreatedBy)
	if err != nil {
		return model.Task{}, err
	}

	t.Floor = floor.String

	for _, s := range assigned {
		id, err := uuid.Parse(s)
		if err != nil {
			return model.Task{}, fmt.Errorf("failed to parse assignee id: %w", err)
		}
		t.AssignedTo = append(t.AssignedTo, id)
	}

	if len(proofJSON) > 0 {
		var proof model.CompletionProof
		if err := json.Unmarshal(proofJSON, &proof); err != nil {
			return model.Task{}, fmt.Errorf("failed to decode completion proof: %w", err)
		}
		t.Proof = &proof
	}

	return t, nil
}
