package notification

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
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/coopstead/portal/internal/api/dto"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/changefeed"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/notifycenter"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

// centerProvider hands out the per-user notification center.
type centerProvider interface {
	For(ctx context.Context, userID uuid.UUID) (*notifycenter.Center, error)
}

// notificationService creates notifications on behalf of other users.
// Member-facing reads and mutations go through the center instead.
type notificationService interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
}

type Handler struct {
	centers   centerProvider
	service   notificationService
	feed      *changefeed.Feed
	validator *validator.Validate
}

func NewHandler(centers centerProvider, service notificationService, feed *changefeed.Feed, v *validator.Validate) *Handler {
	return &Handler{centers: centers, service: service, feed: feed, validator: v}
}

// List returns the authenticated user's notifications, newest first,
// with the derived unread count.
func (h *Handler) List(c *ginext.Context) {
	center, err := h.centers.For(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to initialize notification center")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	snap := center.Snapshot()
	respond.OK(c.Writer, gin.H{
		"notifications": snap.Notifications,
		"unread_count":  snap.UnreadCount,
	})
}

// UnreadCount returns only the unread counter.
func (h *Handler) UnreadCount(c *ginext.Context) {
	center, err := h.centers.For(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to initialize notification center")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, gin.H{"unread_count": center.Snapshot().UnreadCount})
}

// MarkRead marks one notification as read.
func (h *Handler) MarkRead(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid notification id"))
		return
	}

	center, err := h.centers.For(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to initialize notification center")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := center.MarkAsRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, notifycenter.ErrNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("notification_id", id.String()).Msg("failed to mark notification as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification marked as read")
}

// MarkAllRead marks every unread notification as read.
func (h *Handler) MarkAllRead(c *ginext.Context) {
	center, err := h.centers.For(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to initialize notification center")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := center.MarkAllAsRead(c.Request.Context()); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to mark all notifications as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "all notifications marked as read")
}

// Delete removes one notification.
func (h *Handler) Delete(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid notification id"))
		return
	}

	center, err := h.centers.For(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to initialize notification center")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := center.DeleteNotification(c.Request.Context(), id); err != nil {
		if errors.Is(err, notifycenter.ErrNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("notification_id", id.String()).Msg("failed to delete notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification deleted")
}

// Create inserts a notification for another user. Restricted to board
// and admin roles by the router.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateNotificationRequest

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

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
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

	created, err := h.service.Create(c.Request.Context(), model.Notification{
		UserID:    userID,
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		Link:      req.Link,
		ExpiresAt: expiresAt,
		Metadata:  req.Metadata,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", req.UserID).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created.ID)
}

// Stream upgrades the connection to a websocket and forwards the
// user's change-feed events until the client disconnects.
func (h *Handler) Stream(c *ginext.Context) {
	userID := middleware.UserID(c)

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to accept websocket")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream closed")

	ctx := c.Request.Context()

	events := make(chan changefeed.Event, 16)
	sub, err := h.feed.Subscribe(ctx, userID, events)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to subscribe to change feed")
		conn.Close(websocket.StatusInternalError, "subscription failed")
		return
	}
	defer sub.Cancel()

	// Drain reads so pings and the close handshake are processed.
	readCtx := conn.CloseRead(ctx)

	for {
		select {
		case <-readCtx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev := <-events:
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				zlog.Logger.Debug().Err(err).Str("user_id", userID.String()).Msg("websocket write failed")
				return
			}
		}
	}
}
