package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/coopstead/portal/internal/model"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims identify the member behind a request.
type Claims struct {
	UserID uuid.UUID
	Role   string
}

// Manager issues and verifies the signed session tokens the SPA stores.
// Tokens are HS256 with the user id and role as claims.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user.
func (m *Manager) Issue(u model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    u.Role,
		"exp":     time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies a token and extracts its claims. Expired or tampered
// tokens fail with ErrInvalidToken.
func (m *Manager) Parse(tokenStr string) (Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	idStr, _ := mapClaims["user_id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	role, _ := mapClaims["role"].(string)

	return Claims{UserID: userID, Role: role}, nil
}
