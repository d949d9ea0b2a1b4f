package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coopstead/portal/internal/api/dto"
	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/repository/user"
	"github.com/coopstead/portal/internal/session"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/auth/mock.go -package=mocks

type userRepo interface {
	CreateUser(ctx context.Context, u model.User) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

type Handler struct {
	users     userRepo
	sessions  *session.Manager
	validator *validator.Validate
}

func NewHandler(users userRepo, sessions *session.Manager, v *validator.Validate) *Handler {
	return &Handler{users: users, sessions: sessions, validator: v}
}

// Register creates a member account. New accounts always start with the
// member role; board and admin roles are granted out of band.
func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest

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

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to hash password")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	id, err := h.users.CreateUser(c.Request.Context(), model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleMember,
		Unit:         req.Unit,
		Phone:        req.Phone,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("email already registered"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to create user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Login verifies credentials and issues a session token.
func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest

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

	u, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	token, err := h.sessions.Issue(u)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to issue token")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.LoginResponse{Token: token})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *ginext.Context) {
	u, err := h.users.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("user not found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, u)
}
