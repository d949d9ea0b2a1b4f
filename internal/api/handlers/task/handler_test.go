package task

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

	mocks "github.com/coopstead/portal/internal/mocks/api/handlers/task"
	"github.com/coopstead/portal/internal/model"
	taskrepo "github.com/coopstead/portal/internal/repository/task"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocktaskService) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMocktaskService(ctrl)
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

func TestHandler_List_FiltersFromQuery(t *testing.T) {
	handler, service := setupHandler(t)

	assignee := uuid.New()
	service.EXPECT().
		List(gomock.Any(), taskrepo.Filter{Floor: "3", Assignee: assignee, Status: "pending"}).
		Return([]model.Task{{Title: "Sweep stairwell"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks?floor=3&assignee="+assignee.String()+"&status=pending", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_List_BadAssignee(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks?assignee=not-a-uuid", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, service := setupHandler(t)

	id := uuid.New()
	service.EXPECT().
		Get(gomock.Any(), id).
		Return(model.Task{}, taskrepo.ErrTaskNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Create_Success(t *testing.T) {
	handler, service := setupHandler(t)

	userID := uuid.New()
	assignee := uuid.New()
	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, task model.Task) (uuid.UUID, error) {
			assert.Equal(t, "Replace hallway bulb", task.Title)
			assert.Equal(t, []uuid.UUID{assignee}, task.AssignedTo)
			assert.Equal(t, model.TaskStatusPending, task.Status)
			assert.Equal(t, userID, task.CreatedBy)
			assert.Equal(t, 2026, task.DueDate.Year())
			return uuid.New(), nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/tasks", map[string]any{
		"title":       "Replace hallway bulb",
		"assigned_to": []string{assignee.String()},
		"due_date":    "2026-09-15",
		"floor":       "2",
	})
	c.Set("user_id", userID)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_BadDueDate(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/tasks", map[string]any{
		"title":       "Replace hallway bulb",
		"assigned_to": []string{uuid.NewString()},
		"due_date":    "15/09/2026",
	})

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_NoAssignees(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/tasks", map[string]any{
		"title":    "Replace hallway bulb",
		"due_date": "2026-09-15",
	})

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Complete_Success(t *testing.T) {
	handler, service := setupHandler(t)

	taskID := uuid.New()
	userID := uuid.New()
	service.EXPECT().
		Complete(gomock.Any(), taskID, userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, proof model.CompletionProof) error {
			assert.Equal(t, "http://localhost:8080/files/task-proofs/p.jpg", proof.PhotoURL)
			assert.False(t, proof.CompletedAt.IsZero())
			return nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/tasks/"+taskID.String()+"/complete", map[string]any{
		"photo_url": "http://localhost:8080/files/task-proofs/p.jpg",
		"comment":   "done",
	})
	c.Params = gin.Params{{Key: "id", Value: taskID.String()}}
	c.Set("user_id", userID)

	handler.Complete(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Complete_NotFound(t *testing.T) {
	handler, service := setupHandler(t)

	taskID := uuid.New()
	service.EXPECT().
		Complete(gomock.Any(), taskID, gomock.Any(), gomock.Any()).
		Return(taskrepo.ErrTaskNotFound)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/tasks/"+taskID.String()+"/complete", map[string]any{
		"photo_url": "http://localhost:8080/files/task-proofs/p.jpg",
	})
	c.Params = gin.Params{{Key: "id", Value: taskID.String()}}
	c.Set("user_id", uuid.New())

	handler.Complete(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
