package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/api/dto"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/model"
	meetingrepo "github.com/coopstead/portal/internal/repository/meeting"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/meeting/mock.go -package=mocks

type meetingService interface {
	Create(ctx context.Context, m model.Meeting) (uuid.UUID, error)
	List(ctx context.Context) ([]model.Meeting, error)
	Get(ctx context.Context, id uuid.UUID) (model.Meeting, error)
	AddAgendaItem(ctx context.Context, item model.AgendaItem) (uuid.UUID, error)
	RSVP(ctx context.Context, rsvp model.RSVP) error
	CreateResolution(ctx context.Context, res model.Resolution) (uuid.UUID, error)
	ListResolutions(ctx context.Context, meetingID uuid.UUID) ([]model.Resolution, error)
	Vote(ctx context.Context, resolutionID uuid.UUID, ballot string) error
}

type Handler struct {
	service   meetingService
	validator *validator.Validate
}

func NewHandler(service meetingService, v *validator.Validate) *Handler {
	return &Handler{service: service, validator: v}
}

func (h *Handler) List(c *ginext.Context) {
	meetings, err := h.service.List(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list meetings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, meetings)
}

func (h *Handler) Get(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid meeting id"))
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, meetingrepo.ErrMeetingNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("meeting not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("meeting_id", id.String()).Msg("failed to get meeting")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, m)
}

// Create schedules a meeting and notifies its audience. Restricted to
// board and admin roles by the router.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateMeetingRequest

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

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid date, expected YYYY-MM-DD"))
		return
	}

	documents := make([]uuid.UUID, 0, len(req.Documents))
	for _, raw := range req.Documents {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid document id"))
			return
		}
		documents = append(documents, id)
	}

	id, err := h.service.Create(c.Request.Context(), model.Meeting{
		Title:     req.Title,
		Type:      req.Type,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Documents: documents,
		CreatedBy: middleware.UserID(c),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create meeting")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) AddAgendaItem(c *ginext.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid meeting id"))
		return
	}

	var req dto.AgendaItemRequest

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

	id, err := h.service.AddAgendaItem(c.Request.Context(), model.AgendaItem{
		MeetingID:   meetingID,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Presenter:   req.Presenter,
	})
	if err != nil {
		if errors.Is(err, meetingrepo.ErrMeetingNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("meeting not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("meeting_id", meetingID.String()).Msg("failed to add agenda item")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// RSVP saves the caller's attendance answer; repeat answers overwrite.
func (h *Handler) RSVP(c *ginext.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid meeting id"))
		return
	}

	var req dto.RSVPRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	err = h.service.RSVP(c.Request.Context(), model.RSVP{
		MeetingID: meetingID,
		UserID:    middleware.UserID(c),
		Attending: req.Attending,
		Proxy:     req.Proxy,
	})
	if err != nil {
		if errors.Is(err, meetingrepo.ErrMeetingNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("meeting not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("meeting_id", meetingID.String()).Msg("failed to save rsvp")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "rsvp recorded")
}

func (h *Handler) ListResolutions(c *ginext.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid meeting id"))
		return
	}

	resolutions, err := h.service.ListResolutions(c.Request.Context(), meetingID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("meeting_id", meetingID.String()).Msg("failed to list resolutions")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, resolutions)
}

// CreateResolution puts a decision up for vote. Restricted to board and
// admin roles by the router.
func (h *Handler) CreateResolution(c *ginext.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid meeting id"))
		return
	}

	var req dto.CreateResolutionRequest

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

	id, err := h.service.CreateResolution(c.Request.Context(), model.Resolution{
		MeetingID:   meetingID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, meetingrepo.ErrMeetingNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("meeting not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("meeting_id", meetingID.String()).Msg("failed to create resolution")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) Vote(c *ginext.Context) {
	resolutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid resolution id"))
		return
	}

	var req dto.ResolutionVoteRequest

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

	if err := h.service.Vote(c.Request.Context(), resolutionID, req.Ballot); err != nil {
		if errors.Is(err, meetingrepo.ErrResolutionNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("resolution not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("resolution_id", resolutionID.String()).Msg("failed to record vote")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "vote recorded")
}
