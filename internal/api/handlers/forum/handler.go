package forum

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
	forumrepo "github.com/coopstead/portal/internal/repository/forum"
	"github.com/coopstead/portal/internal/service/forum"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/forum/mock.go -package=mocks

type forumService interface {
	ListCategories(ctx context.Context) ([]model.ForumCategory, error)
	ListTopics(ctx context.Context, categoryID uuid.UUID) ([]model.ForumTopic, error)
	GetTopic(ctx context.Context, id uuid.UUID) (forum.TopicView, error)
	CreateTopic(ctx context.Context, topic model.ForumTopic, attachments []model.ForumAttachment) (uuid.UUID, error)
	CreateReply(ctx context.Context, reply model.ForumReply, attachments []model.ForumAttachment) (uuid.UUID, error)
	Report(ctx context.Context, report model.ForumReport) (uuid.UUID, error)
}

type Handler struct {
	service   forumService
	validator *validator.Validate
}

func NewHandler(service forumService, v *validator.Validate) *Handler {
	return &Handler{service: service, validator: v}
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list forum categories")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, categories)
}

// ListTopics returns the topics of one category, pinned first.
func (h *Handler) ListTopics(c *ginext.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid category id"))
		return
	}

	topics, err := h.service.ListTopics(c.Request.Context(), categoryID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("category_id", categoryID.String()).Msg("failed to list topics")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, topics)
}

// GetTopic returns one topic with its replies and attachments. Reading
// it counts as a view.
func (h *Handler) GetTopic(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid topic id"))
		return
	}

	view, err := h.service.GetTopic(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, forumrepo.ErrTopicNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("topic not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("topic_id", id.String()).Msg("failed to get topic")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, view)
}

func (h *Handler) CreateTopic(c *ginext.Context) {
	var req dto.CreateTopicRequest

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

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid category id"))
		return
	}

	id, err := h.service.CreateTopic(c.Request.Context(), model.ForumTopic{
		CategoryID: categoryID,
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		CreatedBy:  middleware.UserID(c),
	}, attachmentsFromRequest(req.Attachments))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create topic")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) CreateReply(c *ginext.Context) {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid topic id"))
		return
	}

	var req dto.CreateReplyRequest

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

	var parentID *uuid.UUID
	if req.ParentID != "" {
		id, err := uuid.Parse(req.ParentID)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid parent id"))
			return
		}
		parentID = &id
	}

	id, err := h.service.CreateReply(c.Request.Context(), model.ForumReply{
		TopicID:   topicID,
		Content:   req.Content,
		ParentID:  parentID,
		CreatedBy: middleware.UserID(c),
	}, attachmentsFromRequest(req.Attachments))
	if err != nil {
		if errors.Is(err, forumrepo.ErrTopicNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("topic not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("topic_id", topicID.String()).Msg("failed to create reply")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) Report(c *ginext.Context) {
	var req dto.ReportContentRequest

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

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid content id"))
		return
	}

	id, err := h.service.Report(c.Request.Context(), model.ForumReport{
		ContentType: req.ContentType,
		ContentID:   contentID,
		Reason:      req.Reason,
		ReportedBy:  middleware.UserID(c),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to report content")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func attachmentsFromRequest(reqs []dto.AttachmentRequest) []model.ForumAttachment {
	attachments := make([]model.ForumAttachment, 0, len(reqs))
	for _, a := range reqs {
		attachments = append(attachments, model.ForumAttachment{
			URL:  a.URL,
			Name: a.Name,
			Size: a.Size,
			Type: a.Type,
		})
	}

	return attachments
}
