package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"store-visit/internal/core/auth"
	"store-visit/internal/domain"
	"store-visit/internal/transport/http/response"
)

const keyActingUser = "actingUser"

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrBody{
		Message: msg, ErrorCode: "AuthenticationError",
	})
}

// AuthUser verifies the access token and resolves the acting user from
// storage, so a soft-deleted user cannot act with a still-valid token.
func AuthUser(t *auth.Tokens, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			unauthorized(c, "missing token")
			return
		}
		claims, err := t.ParseAccess(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}
		uid, err := claims.UserID()
		if err != nil {
			unauthorized(c, "invalid token subject")
			return
		}
		u, err := users.GetByID(c.Request.Context(), uid)
		if err != nil {
			unauthorized(c, "unknown user")
			return
		}
		c.Set(keyActingUser, u)
		c.Next()
	}
}

// ActingUser returns the user resolved by AuthUser; nil outside an
// authenticated group.
func ActingUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(keyActingUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
