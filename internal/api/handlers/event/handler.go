package event

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/api/dto"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks

type eventRepository interface {
	CreateEvent(ctx context.Context, e model.Event) (uuid.UUID, error)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]model.Event, error)
}

type Handler struct {
	events    eventRepository
	validator *validator.Validate
}

func NewHandler(events eventRepository, v *validator.Validate) *Handler {
	return &Handler{events: events, validator: v}
}

// List returns one calendar month of events. ?year= and ?month= default
// to the current month.
func (h *Handler) List(c *ginext.Context) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid year"))
			return
		}
		year = v
	}

	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid month"))
			return
		}
		month = v
	}

	events, err := h.events.ListByMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		zlog.Logger.Error().Err(err).Int("year", year).Int("month", month).Msg("failed to list events")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, events)
}

// Create adds a calendar entry. Restricted to board and admin roles by
// the router.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateEventRequest

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

	id, err := h.events.CreateEvent(c.Request.Context(), model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Type:        req.Type,
		CreatedBy:   middleware.UserID(c),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}
