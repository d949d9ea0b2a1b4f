package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/document/mock.go -package=mocks

type documentRepository interface {
	CreateDocument(ctx context.Context, d model.Document) (uuid.UUID, error)
	ListDocuments(ctx context.Context, category string) ([]model.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Document, error)
}

type userRepository interface {
	ListByRoles(ctx context.Context, roles []string) ([]model.User, error)
}

type notifier interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
}

// Service manages the document registry. Creating a document that
// requires a signature asks every member for one.
type Service struct {
	repo     documentRepository
	users    userRepository
	notifier notifier
}

func NewService(repo documentRepository, users userRepository, notifier notifier) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

// Create registers a document. For signature-requiring documents the
// request fan-out is best effort: failures are logged and the document
// is created regardless.
func (s *Service) Create(ctx context.Context, d model.Document) (uuid.UUID, error) {
	id, err := s.repo.CreateDocument(ctx, d)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create document: %w", err)
	}

	if !d.RequiresSignature {
		return id, nil
	}

	users, err := s.users.ListByRoles(ctx, nil)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("document_id", id.String()).Msg("failed to list signature recipients")
		return id, nil
	}

	for _, u := range users {
		if u.ID == d.CreatedBy {
			continue
		}

		_, err := s.notifier.Create(ctx, model.Notification{
			UserID:  u.ID,
			Type:    model.NotificationTypeDocument,
			Title:   "Signature requested",
			Content: fmt.Sprintf("Please sign %q", d.Title),
			Link:    "/documents/" + id.String(),
		})
		if err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", u.ID.String()).Msg("failed to notify signature recipient")
		}
	}

	return id, nil
}

func (s *Service) List(ctx context.Context, category string) ([]model.Document, error) {
	documents, err := s.repo.ListDocuments(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return documents, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Document, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Document{}, fmt.Errorf("get document: %w", err)
	}

	return d, nil
}
