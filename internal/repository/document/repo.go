package document

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

var ErrDocumentNotFound = errors.New("document not found")

// Repository provides methods to interact with the documents table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const documentColumns = `id, title, description, url, category, type, version, status,
		       requires_signature, signed_by, signed_at, signature_metadata,
		       created_at, created_by, updated_at, updated_by`

// CreateDocument inserts a new document and returns its ID.
func (r *Repository) CreateDocument(ctx context.Context, d model.Document) (uuid.UUID, error) {
	query := `
		INSERT INTO documents (
		    title, description, url, category, type, version, status,
		    requires_signature, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, d.Title, d.Description, d.URL, d.Category, d.Type, d.Version, d.Status,
		d.RequiresSignature, d.CreatedBy,
	).Scan(&d.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create document: %w", err)
	}

	return d.ID, nil
}

// ListDocuments retrieves all documents, newest first, optionally
// filtered by category.
func (r *Repository) ListDocuments(ctx context.Context, category string) ([]model.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE $1 = '' OR category = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}

		documents = append(documents, d)
	}

	return documents, rows.Err()
}

// GetByID retrieves one document.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1;
    `

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, ErrDocumentNotFound
		}

		return model.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return d, nil
}

// StampSignature records who signed the document, when, and where the
// signature image lives.
func (r *Repository) StampSignature(ctx context.Context, id uuid.UUID, meta model.SignatureMetadata) error {
	query := `
		UPDATE documents
		SET signed_by = $2, signed_at = $3, signature_metadata = $4, updated_at = NOW(), updated_by = $2
		WHERE id = $1;
    `

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode signature metadata: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, id, meta.SignedBy, meta.SignedAt, metaJSON)
	if err != nil {
		return fmt.Errorf("failed to stamp signature: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// GetSignature returns the signature metadata of a document, or nil if
// it has not been signed.
func (r *Repository) GetSignature(ctx context.Context, id uuid.UUID) (*model.SignatureMetadata, error) {
	query := `
		SELECT signature_metadata
		FROM documents
		WHERE id = $1;
    `

	var metaJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&metaJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}

		return nil, fmt.Errorf("failed to get signature metadata: %w", err)
	}

	if len(metaJSON) == 0 {
		return nil, nil
	}

	var meta model.SignatureMetadata
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode signature metadata: %w", err)
	}

	return &meta, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (model.Document, error) {
	var (
		d        model.Document
		signedBy uuid.NullUUID
		signedAt sql.NullTime
		metaJSON []byte
	)

	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.URL, &d.Category, &d.Type, &d.Version, &d.Status,
		&d.RequiresSignature, &signedBy, &signedAt, &metaJSON,
		&d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy,
	)
	if err != nil {
		return model.Document{}, err
	}

	if signedBy.Valid {
		d.SignedBy = &signedBy.UUID
	}
	if signedAt.Valid {
		d.SignedAt = &signedAt.Time
	}

	if len(metaJSON) > 0 {
		var meta model.SignatureMetadata
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return model.Document{}, fmt.Errorf("failed to decode signature metadata: %w", err)
		}
		d.Signature = &meta
	}

	return d, nil
}
