package communication

import (
	"bytes"
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

	mocks "github.com/coopstead/portal/internal/mocks/api/handlers/communication"
	"github.com/coopstead/portal/internal/model"
	commrepo "github.com/coopstead/portal/internal/repository/communication"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockcommunicationService) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockcommunicationService(ctrl)
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

func TestHandler_CreateAnnouncement_Success(t *testing.T) {
	handler, service := setupHandler(t)

	userID := uuid.New()
	expires := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	service.EXPECT().
		CreateAnnouncement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, a model.Announcement) (uuid.UUID, error) {
			assert.Equal(t, "Water shutdown", a.Title)
			assert.Equal(t, model.PriorityUrgent, a.Priority)
			assert.Equal(t, []string{"member", "board"}, a.TargetAudience)
			assert.Equal(t, userID, a.CreatedBy)
			if assert.NotNil(t, a.ExpiresAt) {
				assert.True(t, expires.Equal(*a.ExpiresAt))
			}
			return uuid.New(), nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/announcements", map[string]any{
		"title":           "Water shutdown",
		"content":         "Building A, Thursday 9:00",
		"priority":        "urgent",
		"category":        "maintenance",
		"expires_at":      expires.Format(time.RFC3339),
		"target_audience": []string{"member", "board"},
	})
	c.Set("user_id", userID)

	handler.CreateAnnouncement(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_CreateAnnouncement_BadPriority(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/announcements", map[string]any{
		"title":    "Water shutdown",
		"content":  "Building A",
		"priority": "critical",
		"category": "maintenance",
	})

	handler.CreateAnnouncement(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_CreateAnnouncement_BadExpiry(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/announcements", map[string]any{
		"title":      "Water shutdown",
		"content":    "Building A",
		"priority":   "low",
		"category":   "maintenance",
		"expires_at": "tomorrow",
	})

	handler.CreateAnnouncement(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Acknowledge_NotFound(t *testing.T) {
	handler, service := setupHandler(t)

	id := uuid.New()
	userID := uuid.New()
	service.EXPECT().
		Acknowledge(gomock.Any(), id, userID).
		Return(commrepo.ErrAnnouncementNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/announcements/"+id.String()+"/acknowledge", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Set("user_id", userID)

	handler.Acknowledge(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Vote_ReturnsTally(t *testing.T) {
	handler, service := setupHandler(t)

	itemID := uuid.New()
	userID := uuid.New()
	service.EXPECT().
		Vote(gomock.Any(), model.FAQVote{FAQItemID: itemID, UserID: userID, VoteType: "up"}).
		Return(7, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/faq/items/"+itemID.String()+"/vote", map[string]any{"vote_type": "up"})
	c.Params = gin.Params{{Key: "id", Value: itemID.String()}}
	c.Set("user_id", userID)

	handler.Vote(c)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp struct {
		Data struct {
			Votes int `json:"votes"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&resp))
	assert.Equal(t, 7, resp.Data.Votes)
}

func TestHandler_Vote_BadType(t *testing.T) {
	handler, _ := setupHandler(t)

	itemID := uuid.New()
	w := httptest.NewRecorder()
	c := postJSON(t, w, "/faq/items/"+itemID.String()+"/vote", map[string]any{"vote_type": "sideways"})
	c.Params = gin.Params{{Key: "id", Value: itemID.String()}}

	handler.Vote(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Suggest_Success(t *testing.T) {
	handler, service := setupHandler(t)

	userID := uuid.New()
	service.EXPECT().
		Suggest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, s model.FAQSuggestion) (uuid.UUID, error) {
			assert.Equal(t, "Where are the bins?", s.Question)
			assert.Equal(t, userID, s.SubmittedBy)
			return uuid.New(), nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/faq/suggestions", map[string]any{"question": "Where are the bins?"})
	c.Set("user_id", userID)

	handler.Suggest(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}
