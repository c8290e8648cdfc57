package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/blueswitch/blueswitch/internal/auth"
)

type stubVerifier struct {
	tokens map[string]string
}

func (s stubVerifier) Verify(_ context.Context, token string) (*auth.Identity, error) {
	email, ok := s.tokens[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Identity{UID: "uid", Email: email}, nil
}

func runAuth(t *testing.T, verifier auth.Verifier, headers map[string]string) (*httptest.ResponseRecorder, *auth.Identity) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen *auth.Identity
	r := gin.New()
	r.GET("/", NewAuthMiddleware(verifier).Authenticate(), func(c *gin.Context) {
		seen, _ = auth.IdentityFrom(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seen
}

func TestAuthenticate(t *testing.T) {
	verifier := stubVerifier{tokens: map[string]string{"good": "ana@example.com"}}

	tests := []struct {
		name         string
		verifier     auth.Verifier
		headers      map[string]string
		wantStatus   int
		wantIdentity string
	}{
		{
			name:         "valid bearer token",
			verifier:     verifier,
			headers:      map[string]string{"Authorization": "Bearer good"},
			wantStatus:   http.StatusNoContent,
			wantIdentity: "ana@example.com",
		},
		{
			name:       "missing header",
			verifier:   verifier,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			verifier:   verifier,
			headers:    map[string]string{"Authorization": "Basic abc"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			verifier:   verifier,
			headers:    map[string]string{"Authorization": "Bearer forged"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "dev mode trusts email header",
			headers:      map[string]string{HeaderUserEmail: "bob@example.com"},
			wantStatus:   http.StatusNoContent,
			wantIdentity: "bob@example.com",
		},
		{
			name:       "dev mode without header is anonymous",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, id := runAuth(t, tt.verifier, tt.headers)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantIdentity == "" {
				assert.Nil(t, id)
				return
			}
			if assert.NotNil(t, id) {
				assert.Equal(t, tt.wantIdentity, id.Email)
			}
		})
	}
}
