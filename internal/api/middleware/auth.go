package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"

	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/session"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// Auth verifies the bearer token and stores the session claims on the
// request context.
func Auth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == "" {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing token"))
			c.Abort()
			return
		}

		claims, err := sessions.Parse(tokenStr)
		if err != nil {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid token"))
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects requests whose session role is not in the list.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *ginext.Context) {
		role := Role(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("insufficient role"))
		c.Abort()
	}
}

// UserID returns the authenticated user's id, or uuid.Nil outside an
// authenticated route.
func UserID(c *ginext.Context) uuid.UUID {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return uuid.Nil
	}

	id, _ := v.(uuid.UUID)
	return id
}

// Role returns the authenticated user's role.
func Role(c *ginext.Context) string {
	v, ok := c.Get(ctxRole)
	if !ok {
		return ""
	}

	role, _ := v.(string)
	return role
}
