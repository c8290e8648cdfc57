package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/blueswitch/blueswitch/internal/auth"
	"github.com/blueswitch/blueswitch/internal/handler"
)

// serve runs fn against a JSON POST body, optionally as an authenticated caller.
func serve(t *testing.T, fn gin.HandlerFunc, path string, body interface{}, callerEmail string) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if callerEmail != "" {
		auth.SetIdentity(c, &auth.Identity{UID: "uid-" + callerEmail, Email: callerEmail})
	}

	fn(c)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()

	var response handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
