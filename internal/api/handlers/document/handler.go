package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/api/dto"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/repository/document"
	"github.com/coopstead/portal/internal/service/signature"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/document/mock.go -package=mocks

type documentService interface {
	Create(ctx context.Context, d model.Document) (uuid.UUID, error)
	List(ctx context.Context, category string) ([]model.Document, error)
	Get(ctx context.Context, id uuid.UUID) (model.Document, error)
}

type signatureService interface {
	Sign(ctx context.Context, documentID, userID uuid.UUID, signatureData string) (model.SignatureMetadata, error)
	Verify(ctx context.Context, documentID uuid.UUID) (*model.SignatureMetadata, error)
}

type Handler struct {
	documents  documentService
	signatures signatureService
	validator  *validator.Validate
}

func NewHandler(documents documentService, signatures signatureService, v *validator.Validate) *Handler {
	return &Handler{documents: documents, signatures: signatures, validator: v}
}

// List returns documents, optionally filtered by ?category=.
func (h *Handler) List(c *ginext.Context) {
	documents, err := h.documents.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list documents")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, documents)
}

// Get returns one document by id.
func (h *Handler) Get(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid document id"))
		return
	}

	doc, err := h.documents.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("document not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("document_id", id.String()).Msg("failed to get document")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, doc)
}

// Create registers a document record. Restricted to board and admin
// roles by the router.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateDocumentRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	userID := middleware.UserID(c)

	id, err := h.documents.Create(c.Request.Context(), model.Document{
		Title:             req.Title,
		Description:       req.Description,
		URL:               req.URL,
		Category:          req.Category,
		Type:              req.Type,
		Version:           req.Version,
		Status:            model.DocumentStatusActive,
		RequiresSignature: req.RequiresSignature,
		CreatedBy:         userID,
		UpdatedBy:         userID,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create document")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Sign stores the captured signature image and stamps the document.
func (h *Handler) Sign(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid document id"))
		return
	}

	var req dto.SignDocumentRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	meta, err := h.signatures.Sign(c.Request.Context(), id, middleware.UserID(c), req.SignatureData)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrDocumentNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("document not found"))
		case errors.Is(err, signature.ErrInvalidSignatureData):
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid signature data"))
		case errors.Is(err, signature.ErrSignatureNotRequired):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("document does not require a signature"))
		case errors.Is(err, signature.ErrAlreadySigned):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("document already signed"))
		default:
			zlog.Logger.Error().Err(err).Str("document_id", id.String()).Msg("failed to sign document")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, meta)
}

// Verify returns the signature metadata, or null when unsigned.
func (h *Handler) Verify(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid document id"))
		return
	}

	meta, err := h.signatures.Verify(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("document not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("document_id", id.String()).Msg("failed to verify signature")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, meta)
}
