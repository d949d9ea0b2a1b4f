package document

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

	mocks "github.com/coopstead/portal/internal/mocks/api/handlers/document"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/repository/document"
	"github.com/coopstead/portal/internal/service/signature"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockdocumentService, *mocks.MocksignatureService) {
	ctrl := gomock.NewController(t)
	documents := mocks.NewMockdocumentService(ctrl)
	signatures := mocks.NewMocksignatureService(ctrl)
	handler := NewHandler(documents, signatures, validator.New())
	return handler, documents, signatures
}

func TestHandler_List_Success(t *testing.T) {
	handler, documents, _ := setupHandler(t)

	documents.EXPECT().
		List(gomock.Any(), "regulations").
		Return([]model.Document{{Title: "House rules"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/documents?category=regulations", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, documents, _ := setupHandler(t)

	id := uuid.New()
	documents.EXPECT().
		Get(gomock.Any(), id).
		Return(model.Document{}, document.ErrDocumentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Create_Success(t *testing.T) {
	handler, documents, _ := setupHandler(t)

	userID := uuid.New()
	documents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, d model.Document) (uuid.UUID, error) {
			assert.Equal(t, "Lease template", d.Title)
			assert.Equal(t, model.DocumentStatusActive, d.Status)
			assert.Equal(t, userID, d.CreatedBy)
			assert.Equal(t, userID, d.UpdatedBy)
			return uuid.New(), nil
		})

	body, _ := json.Marshal(map[string]interface{}{
		"title":    "Lease template",
		"url":      "https://portal.coop.test/files/documents/lease.pdf",
		"category": "contracts",
		"type":     "template",
	})

	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_BadCategory(t *testing.T) {
	handler, _, _ := setupHandler(t)

	body, _ := json.Marshal(map[string]interface{}{
		"title":    "Lease template",
		"url":      "https://portal.coop.test/files/documents/lease.pdf",
		"category": "misc",
		"type":     "template",
	})

	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Sign_Success(t *testing.T) {
	handler, _, signatures := setupHandler(t)

	docID := uuid.New()
	userID := uuid.New()
	meta := model.SignatureMetadata{
		SignedBy:     userID,
		SignedAt:     time.Now().UTC(),
		SignatureURL: "https://portal.coop.test/files/documents/signatures/sig.png",
	}

	signatures.EXPECT().
		Sign(gomock.Any(), docID, userID, "data:image/png;base64,iVBOR").
		Return(meta, nil)

	body, _ := json.Marshal(map[string]string{"signature_data": "data:image/png;base64,iVBOR"})

	req := httptest.NewRequest(http.MethodPost, "/documents/"+docID.String()+"/sign", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}
	c.Set("user_id", userID)

	handler.Sign(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Sign_AlreadySigned(t *testing.T) {
	handler, _, signatures := setupHandler(t)

	docID := uuid.New()
	signatures.EXPECT().
		Sign(gomock.Any(), docID, gomock.Any(), gomock.Any()).
		Return(model.SignatureMetadata{}, signature.ErrAlreadySigned)

	body, _ := json.Marshal(map[string]string{"signature_data": "data:image/png;base64,iVBOR"})

	req := httptest.NewRequest(http.MethodPost, "/documents/"+docID.String()+"/sign", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}
	c.Set("user_id", uuid.New())

	handler.Sign(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Verify_Unsigned(t *testing.T) {
	handler, _, signatures := setupHandler(t)

	docID := uuid.New()
	signatures.EXPECT().
		Verify(gomock.Any(), docID).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+docID.String()+"/signature", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
