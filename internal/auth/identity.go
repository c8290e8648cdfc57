// Package auth verifies caller identities and carries them through requests.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is an authenticated caller.
type Identity struct {
	UID   string
	Email string
}

// Verifier turns a bearer token into an identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

const identityKey = "auth.identity"

// SetIdentity stores the caller on the gin context.
func SetIdentity(c *gin.Context, id *Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the caller stored on the gin context, if any.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok && id != nil
}

// SameEmail compares emails the way Firebase does, ignoring case.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
