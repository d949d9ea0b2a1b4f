package auth

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
	"golang.org/x/crypto/bcrypt"

	"github.com/coopstead/portal/internal/api/dto"
	mocks "github.com/coopstead/portal/internal/mocks/api/handlers/auth"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/repository/user"
	"github.com/coopstead/portal/internal/session"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockuserRepo, *session.Manager) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockuserRepo(ctrl)
	sessions := session.NewManager("test-secret", time.Hour)
	handler := NewHandler(users, sessions, validator.New())
	return handler, users, sessions
}

func postJSON(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func TestHandler_Register_Success(t *testing.T) {
	handler, users, _ := setupHandler(t)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, u model.User) (uuid.UUID, error) {
			assert.Equal(t, "resident@coop.test", u.Email)
			assert.Equal(t, model.RoleMember, u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-password")))
			return uuid.New(), nil
		})

	c, w := postJSON(t, dto.RegisterRequest{
		Email:     "resident@coop.test",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Nilsen",
		Unit:      "4B",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	handler, users, _ := setupHandler(t)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, user.ErrEmailTaken)

	c, w := postJSON(t, dto.RegisterRequest{
		Email:     "resident@coop.test",
		Password:  "secret-password",
		FirstName: "Ada",
		LastName:  "Nilsen",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := postJSON(t, dto.RegisterRequest{
		Email:     "resident@coop.test",
		Password:  "short",
		FirstName: "Ada",
		LastName:  "Nilsen",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Login_Success(t *testing.T) {
	handler, users, sessions := setupHandler(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	users.EXPECT().
		GetByEmail(gomock.Any(), "resident@coop.test").
		Return(model.User{
			ID:           userID,
			Email:        "resident@coop.test",
			PasswordHash: string(hash),
			Role:         model.RoleMember,
		}, nil)

	c, w := postJSON(t, dto.LoginRequest{
		Email:    "resident@coop.test",
		Password: "secret-password",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp struct {
		Data dto.LoginResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := sessions.Parse(resp.Data.Token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.RoleMember, claims.Role)
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	handler, users, _ := setupHandler(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)

	users.EXPECT().
		GetByEmail(gomock.Any(), "resident@coop.test").
		Return(model.User{PasswordHash: string(hash)}, nil)

	c, w := postJSON(t, dto.LoginRequest{
		Email:    "resident@coop.test",
		Password: "not-the-password",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestHandler_Login_UnknownEmail(t *testing.T) {
	handler, users, _ := setupHandler(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "nobody@coop.test").
		Return(model.User{}, user.ErrUserNotFound)

	c, w := postJSON(t, dto.LoginRequest{
		Email:    "nobody@coop.test",
		Password: "secret-password",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestHandler_Me_Success(t *testing.T) {
	handler, users, _ := setupHandler(t)

	userID := uuid.New()
	users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(model.User{ID: userID, Email: "resident@coop.test"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
