package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlermocks "github.com/coopstead/portal/internal/mocks/api/handlers/notification"
	centermocks "github.com/coopstead/portal/internal/mocks/notifycenter"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/notifycenter"
)

type nopSub struct{}

func (nopSub) Cancel() {}

func setupHandler(t *testing.T) (*Handler, *handlermocks.MockcenterProvider, *handlermocks.MocknotificationService, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	centers := handlermocks.NewMockcenterProvider(ctrl)
	service := handlermocks.NewMocknotificationService(ctrl)
	handler := NewHandler(centers, service, nil, validator.New())

	return handler, centers, service, ctrl
}

// readyCenter builds an initialized center over the given stored rows.
func readyCenter(t *testing.T, ctrl *gomock.Controller, userID uuid.UUID, stored []model.Notification) (*notifycenter.Center, *centermocks.MockGateway) {
	t.Helper()

	gateway := centermocks.NewMockGateway(ctrl)
	feed := centermocks.NewMockFeed(ctrl)

	feed.EXPECT().
		Subscribe(gomock.Any(), userID, gomock.Any()).
		Return(nopSub{}, nil)
	gateway.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return(stored, nil)

	center := notifycenter.New(gateway, feed)
	require.NoError(t, center.Initialize(context.Background(), userID))
	t.Cleanup(center.Close)

	return center, gateway
}

func TestHandler_List_Success(t *testing.T) {
	handler, centers, _, ctrl := setupHandler(t)

	userID := uuid.New()
	stored := []model.Notification{
		{ID: uuid.New(), UserID: userID, Read: false, CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, Read: true, CreatedAt: time.Now().Add(-time.Hour)},
	}

	center, _ := readyCenter(t, ctrl, userID, stored)
	centers.EXPECT().For(gomock.Any(), userID).Return(center, nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp struct {
		Data struct {
			Notifications []model.Notification `json:"notifications"`
			UnreadCount   int                  `json:"unread_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Notifications, 2)
	assert.Equal(t, 1, resp.Data.UnreadCount)
}

func TestHandler_MarkRead_Success(t *testing.T) {
	handler, centers, _, ctrl := setupHandler(t)

	userID := uuid.New()
	target := model.Notification{ID: uuid.New(), UserID: userID, Read: false, CreatedAt: time.Now()}

	center, gateway := readyCenter(t, ctrl, userID, []model.Notification{target})
	centers.EXPECT().For(gomock.Any(), userID).Return(center, nil)
	gateway.EXPECT().MarkRead(gomock.Any(), target.ID).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/notifications/"+target.ID.String()+"/read", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: target.ID.String()}}
	c.Set("user_id", userID)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, 0, center.Snapshot().UnreadCount)
}

func TestHandler_MarkRead_UnknownID(t *testing.T) {
	handler, centers, _, ctrl := setupHandler(t)

	userID := uuid.New()
	center, _ := readyCenter(t, ctrl, userID, nil)
	centers.EXPECT().For(gomock.Any(), userID).Return(center, nil)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/notifications/"+id.String()+"/read", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Set("user_id", userID)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Create_Success(t *testing.T) {
	handler, _, service, _ := setupHandler(t)

	userID := uuid.New()
	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n model.Notification) (model.Notification, error) {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, "announcement", n.Type)
			n.ID = uuid.New()
			return n, nil
		})

	body, _ := json.Marshal(map[string]interface{}{
		"user_id": userID.String(),
		"type":    "announcement",
		"title":   "Roof inspection",
		"content": "Inspectors on site Friday.",
	})

	req := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_BadType(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	body, _ := json.Marshal(map[string]interface{}{
		"user_id": uuid.New().String(),
		"type":    "gossip",
		"title":   "Roof inspection",
		"content": "Inspectors on site Friday.",
	})

	req := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
