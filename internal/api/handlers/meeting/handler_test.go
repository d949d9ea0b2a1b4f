package meeting

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/coopstead/portal/internal/mocks/api/handlers/meeting"
	"github.com/coopstead/portal/internal/model"
	meetingrepo "github.com/coopstead/portal/internal/repository/meeting"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockmeetingService) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockmeetingService(ctrl)
	return NewHandler(service, validator.New()), service
}

func postJSON(t *testing.T, w *httptest.ResponseRecorder, target string, body any) *gin.Context {
	t.Helper()

	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	return c
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, service := setupHandler(t)

	id := uuid.New()
	service.EXPECT().
		Get(gomock.Any(), id).
		Return(model.Meeting{}, meetingrepo.ErrMeetingNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/meetings/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Create_Success(t *testing.T) {
	handler, service := setupHandler(t)

	userID := uuid.New()
	docID := uuid.New()
	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, m model.Meeting) (uuid.UUID, error) {
			assert.Equal(t, "Annual general meeting", m.Title)
			assert.Equal(t, "AG", m.Type)
			assert.Equal(t, []uuid.UUID{docID}, m.Documents)
			assert.Equal(t, userID, m.CreatedBy)
			return uuid.New(), nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/meetings", map[string]any{
		"title":      "Annual general meeting",
		"type":       "AG",
		"date":       "2026-11-20",
		"start_time": "18:00",
		"documents":  []string{docID.String()},
	})
	c.Set("user_id", userID)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_BadType(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/meetings", map[string]any{
		"title":      "Annual general meeting",
		"type":       "townhall",
		"date":       "2026-11-20",
		"start_time": "18:00",
	})

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_AddAgendaItem_MeetingGone(t *testing.T) {
	handler, service := setupHandler(t)

	meetingID := uuid.New()
	service.EXPECT().
		AddAgendaItem(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, meetingrepo.ErrMeetingNotFound)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/meetings/"+meetingID.String()+"/agenda", map[string]any{
		"title": "Budget review",
	})
	c.Params = gin.Params{{Key: "id", Value: meetingID.String()}}

	handler.AddAgendaItem(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_RSVP_Success(t *testing.T) {
	handler, service := setupHandler(t)

	meetingID := uuid.New()
	userID := uuid.New()
	service.EXPECT().
		RSVP(gomock.Any(), model.RSVP{
			MeetingID: meetingID,
			UserID:    userID,
			Attending: true,
			Proxy:     "J. Renard",
		}).
		Return(nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/meetings/"+meetingID.String()+"/rsvp", map[string]any{
		"attending": true,
		"proxy":     "J. Renard",
	})
	c.Params = gin.Params{{Key: "id", Value: meetingID.String()}}
	c.Set("user_id", userID)

	handler.RSVP(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Vote_Success(t *testing.T) {
	handler, service := setupHandler(t)

	resolutionID := uuid.New()
	service.EXPECT().
		Vote(gomock.Any(), resolutionID, "for").
		Return(nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/meetings/resolutions/"+resolutionID.String()+"/vote", map[string]any{"ballot": "for"})
	c.Params = gin.Params{{Key: "id", Value: resolutionID.String()}}

	handler.Vote(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Vote_UnknownResolution(t *testing.T) {
	handler, service := setupHandler(t)

	resolutionID := uuid.New()
	service.EXPECT().
		Vote(gomock.Any(), resolutionID, "against").
		Return(meetingrepo.ErrResolutionNotFound)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/meetings/resolutions/"+resolutionID.String()+"/vote", map[string]any{"ballot": "against"})
	c.Params = gin.Params{{Key: "id", Value: resolutionID.String()}}

	handler.Vote(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Vote_BadBallot(t *testing.T) {
	handler, _ := setupHandler(t)

	resolutionID := uuid.New()
	w := httptest.NewRecorder()
	c := postJSON(t, w, "/meetings/resolutions/"+resolutionID.String()+"/vote", map[string]any{"ballot": "maybe"})
	c.Params = gin.Params{{Key: "id", Value: resolutionID.String()}}

	handler.Vote(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
