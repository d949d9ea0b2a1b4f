package communication

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/api/dto"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/model"
	commrepo "github.com/coopstead/portal/internal/repository/communication"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/communication/mock.go -package=mocks

type communicationService interface {
	CreateAnnouncement(ctx context.Context, a model.Announcement) (uuid.UUID, error)
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	Acknowledge(ctx context.Context, announcementID, userID uuid.UUID) error
	ListFAQCategories(ctx context.Context) ([]model.FAQCategory, error)
	ListFAQItems(ctx context.Context, categoryID uuid.UUID) ([]model.FAQItem, error)
	Vote(ctx context.Context, vote model.FAQVote) (int, error)
	Suggest(ctx context.Context, suggestion model.FAQSuggestion) (uuid.UUID, error)
}

type Handler struct {
	service   communicationService
	validator *validator.Validate
}

func NewHandler(service communicationService, v *validator.Validate) *Handler {
	return &Handler{service: service, validator: v}
}

func (h *Handler) ListAnnouncements(c *ginext.Context) {
	announcements, err := h.service.ListAnnouncements(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list announcements")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, announcements)
}

// CreateAnnouncement publishes an announcement and fans out
// notifications to the target audience. Restricted to board and admin
// roles by the router.
func (h *Handler) CreateAnnouncement(c *ginext.Context) {
	var req dto.CreateAnnouncementRequest

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

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid expires_at, expected RFC 3339"))
			return
		}
		expiresAt = &t
	}

	id, err := h.service.CreateAnnouncement(c.Request.Context(), model.Announcement{
		Title:                  req.Title,
		Content:                req.Content,
		Priority:               req.Priority,
		Category:               req.Category,
		ExpiresAt:              expiresAt,
		TargetAudience:         req.TargetAudience,
		AcknowledgmentRequired: req.AcknowledgmentRequired,
		CreatedBy:              middleware.UserID(c),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create announcement")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) Acknowledge(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid announcement id"))
		return
	}

	if err := h.service.Acknowledge(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		if errors.Is(err, commrepo.ErrAnnouncementNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("announcement not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("announcement_id", id.String()).Msg("failed to acknowledge announcement")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "announcement acknowledged")
}

func (h *Handler) ListFAQCategories(c *ginext.Context) {
	categories, err := h.service.ListFAQCategories(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list faq categories")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, categories)
}

// ListFAQItems returns the published items of one category.
func (h *Handler) ListFAQItems(c *ginext.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid category id"))
		return
	}

	items, err := h.service.ListFAQItems(c.Request.Context(), categoryID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("category_id", categoryID.String()).Msg("failed to list faq items")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, items)
}

// Vote records the caller's vote on an item and returns the new tally.
func (h *Handler) Vote(c *ginext.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid item id"))
		return
	}

	var req dto.FAQVoteRequest

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

	votes, err := h.service.Vote(c.Request.Context(), model.FAQVote{
		FAQItemID: itemID,
		UserID:    middleware.UserID(c),
		VoteType:  req.VoteType,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to record vote")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, gin.H{"votes": votes})
}

func (h *Handler) Suggest(c *ginext.Context) {
	var req dto.FAQSuggestionRequest

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

	id, err := h.service.Suggest(c.Request.Context(), model.FAQSuggestion{
		Question:    req.Question,
		Context:     req.Context,
		SubmittedBy: middleware.UserID(c),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to submit suggestion")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}
