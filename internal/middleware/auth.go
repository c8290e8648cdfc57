// Package middleware contains gin middleware shared by all routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/auth"
	"github.com/blueswitch/blueswitch/internal/handler"
)

// HeaderUserEmail names the caller when token verification is disabled.
const HeaderUserEmail = "X-User-Email"

// AuthMiddleware authenticates callers with Firebase ID tokens.
type AuthMiddleware struct {
	verifier auth.Verifier
}

// NewAuthMiddleware creates the middleware. A nil verifier trusts the X-User-Email header,
// which is only meant for local development.
func NewAuthMiddleware(verifier auth.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the caller identity.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.verifier == nil {
			if email := strings.TrimSpace(c.GetHeader(HeaderUserEmail)); email != "" {
				auth.SetIdentity(c, &auth.Identity{UID: email, Email: email})
			}
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			handler.Error(c, handler.ErrorUnauthorized, "Authorization header is missing", http.StatusUnauthorized)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			handler.Error(c, handler.ErrorUnauthorized, "Invalid token format, must be Bearer token", http.StatusUnauthorized)
			c.Abort()
			return
		}

		id, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			handler.Error(c, handler.ErrorUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
			c.Abort()
			return
		}

		auth.SetIdentity(c, id)
		c.Next()
	}
}
