// controller/controller_test.go
package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/eventdesk/util"
)

const callerID int64 = 1

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter returns an engine whose requests run as callerID, standing in
// for the auth middleware.
func setupRouter() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	api := r.Group("/", func(c *gin.Context) {
		c.Set(util.UserIDKey, callerID)
		c.Next()
	})
	return r, api
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
