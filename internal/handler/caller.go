package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/auth"
)

// ensureCaller rejects requests whose body email differs from the authenticated caller.
// Requests without an identity pass through unchanged.
func ensureCaller(c *gin.Context, email string) bool {
	id, ok := auth.IdentityFrom(c)
	if !ok || email == "" {
		return true
	}
	if !auth.SameEmail(id.Email, email) {
		Forbidden(c, "email does not match the signed-in user")
		return false
	}
	return true
}

// requireCaller returns the authenticated caller or responds with 401.
func requireCaller(c *gin.Context) (*auth.Identity, bool) {
	id, ok := auth.IdentityFrom(c)
	if !ok || id.Email == "" {
		Unauthorized(c, "sign-in required")
		return nil, false
	}
	return id, true
}

// callerEmail returns the authenticated caller's email, or "" without an identity.
func callerEmail(c *gin.Context) string {
	if id, ok := auth.IdentityFrom(c); ok {
		return id.Email
	}
	return ""
}
