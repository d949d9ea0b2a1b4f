package forum

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

	mocks "github.com/coopstead/portal/internal/mocks/api/handlers/forum"
	"github.com/coopstead/portal/internal/model"
	forumrepo "github.com/coopstead/portal/internal/repository/forum"
	forumsvc "github.com/coopstead/portal/internal/service/forum"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockforumService) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockforumService(ctrl)
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

func TestHandler_ListCategories_Success(t *testing.T) {
	handler, service := setupHandler(t)

	service.EXPECT().
		ListCategories(gomock.Any()).
		Return([]model.ForumCategory{{Name: "General"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/forum/categories", nil)

	handler.ListCategories(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetTopic_NotFound(t *testing.T) {
	handler, service := setupHandler(t)

	id := uuid.New()
	service.EXPECT().
		GetTopic(gomock.Any(), id).
		Return(forumsvc.TopicView{}, forumrepo.ErrTopicNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/forum/topics/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.GetTopic(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_CreateTopic_Success(t *testing.T) {
	handler, service := setupHandler(t)

	userID := uuid.New()
	categoryID := uuid.New()
	service.EXPECT().
		CreateTopic(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, topic model.ForumTopic, attachments []model.ForumAttachment) (uuid.UUID, error) {
			assert.Equal(t, categoryID, topic.CategoryID)
			assert.Equal(t, "Bike storage", topic.Title)
			assert.Equal(t, userID, topic.CreatedBy)
			assert.Len(t, attachments, 1)
			assert.Equal(t, "plan.pdf", attachments[0].Name)
			return uuid.New(), nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/forum/topics", map[string]any{
		"category_id": categoryID.String(),
		"title":       "Bike storage",
		"content":     "Can we add racks in the basement?",
		"attachments": []map[string]any{
			{"url": "http://localhost:8080/files/forum-attachments/plan.pdf", "name": "plan.pdf"},
		},
	})
	c.Set("user_id", userID)

	handler.CreateTopic(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_CreateTopic_MissingTitle(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/forum/topics", map[string]any{
		"category_id": uuid.NewString(),
		"content":     "no title",
	})

	handler.CreateTopic(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_CreateReply_Success(t *testing.T) {
	handler, service := setupHandler(t)

	userID := uuid.New()
	topicID := uuid.New()
	parentID := uuid.New()
	service.EXPECT().
		CreateReply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, reply model.ForumReply, _ []model.ForumAttachment) (uuid.UUID, error) {
			assert.Equal(t, topicID, reply.TopicID)
			assert.Equal(t, userID, reply.CreatedBy)
			if assert.NotNil(t, reply.ParentID) {
				assert.Equal(t, parentID, *reply.ParentID)
			}
			return uuid.New(), nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/forum/topics/"+topicID.String()+"/replies", map[string]any{
		"content":   "Racks would be great.",
		"parent_id": parentID.String(),
	})
	c.Params = gin.Params{{Key: "id", Value: topicID.String()}}
	c.Set("user_id", userID)

	handler.CreateReply(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_CreateReply_TopicGone(t *testing.T) {
	handler, service := setupHandler(t)

	topicID := uuid.New()
	service.EXPECT().
		CreateReply(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, forumrepo.ErrTopicNotFound)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/forum/topics/"+topicID.String()+"/replies", map[string]any{
		"content": "too late",
	})
	c.Params = gin.Params{{Key: "id", Value: topicID.String()}}
	c.Set("user_id", uuid.New())

	handler.CreateReply(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Report_BadContentType(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/forum/reports", map[string]any{
		"content_type": "comment",
		"content_id":   uuid.NewString(),
		"reason":       "spam",
	})

	handler.Report(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Report_Success(t *testing.T) {
	handler, service := setupHandler(t)

	userID := uuid.New()
	contentID := uuid.New()
	service.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, report model.ForumReport) (uuid.UUID, error) {
			assert.Equal(t, "reply", report.ContentType)
			assert.Equal(t, contentID, report.ContentID)
			assert.Equal(t, userID, report.ReportedBy)
			return uuid.New(), nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/forum/reports", map[string]any{
		"content_type": "reply",
		"content_id":   contentID.String(),
		"reason":       "harassment",
	})
	c.Set("user_id", userID)

	handler.Report(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}
