package signature

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/storage"
)

var (
	ErrInvalidSignatureData = errors.New("invalid signature data")
	ErrAlreadySigned        = errors.New("document already signed")
	ErrSignatureNotRequired = errors.New("document does not require a signature")
)

const dataURLPrefix = "data:image/png;base64,"

//go:generate mockgen -source=service.go -destination=../../mocks/service/signature/mock.go -package=mocks

type documentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Document, error)
	StampSignature(ctx context.Context, id uuid.UUID, meta model.SignatureMetadata) error
	GetSignature(ctx context.Context, id uuid.UUID) (*model.SignatureMetadata, error)
}

type objectStore interface {
	Upload(bucket, objectPath, contentType string, r io.Reader) (string, error)
}

// Service implements document signing: the signature image captured on
// the client arrives as a base64 PNG data URL, lands in the documents
// bucket, and the document row is stamped with the signer, the time and
// the image URL.
type Service struct {
	documents documentRepository
	store     objectStore
	now       func() time.Time
}

func NewService(documents documentRepository, store objectStore) *Service {
	return &Service{documents: documents, store: store, now: time.Now}
}

// Sign uploads the signature image and stamps the document. A document
// can be signed once; signing a document that does not require a
// signature is rejected.
func (s *Service) Sign(ctx context.Context, documentID, userID uuid.UUID, signatureData string) (model.SignatureMetadata, error) {
	img, err := decodeDataURL(signatureData)
	if err != nil {
		return model.SignatureMetadata{}, err
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return model.SignatureMetadata{}, fmt.Errorf("sign document: %w", err)
	}
	if !doc.RequiresSignature {
		return model.SignatureMetadata{}, ErrSignatureNotRequired
	}
	if doc.SignedBy != nil {
		return model.SignatureMetadata{}, ErrAlreadySigned
	}

	now := s.now().UTC()
	objectPath := fmt.Sprintf("signatures/%s/%s_%d.png", documentID, userID, now.UnixMilli())

	url, err := s.store.Upload(storage.BucketDocuments, objectPath, "image/png", bytes.NewReader(img))
	if err != nil {
		return model.SignatureMetadata{}, fmt.Errorf("upload signature image: %w", err)
	}

	meta := model.SignatureMetadata{
		SignedBy:     userID,
		SignedAt:     now,
		SignatureURL: url,
	}

	if err := s.documents.StampSignature(ctx, documentID, meta); err != nil {
		return model.SignatureMetadata{}, fmt.Errorf("stamp signature: %w", err)
	}

	return meta, nil
}

// Verify returns the signature metadata of a document, or nil if it has
// not been signed.
func (s *Service) Verify(ctx context.Context, documentID uuid.UUID) (*model.SignatureMetadata, error) {
	meta, err := s.documents.GetSignature(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("verify signature: %w", err)
	}

	return meta, nil
}

func decodeDataURL(data string) ([]byte, error) {
	if !strings.HasPrefix(data, dataURLPrefix) {
		return nil, fmt.Errorf("%w: expected a PNG data URL", ErrInvalidSignatureData)
	}

	img, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(data, dataURLPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignatureData, err)
	}
	if len(img) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidSignatureData)
	}

	return img, nil
}
