//go:build unit
// +build unit

package v1

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

const testUserID = "0b8f6c1e-2f5d-4a7b-9c3e-1d2a3b4c5d6e"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext returns a gin context authenticated as testUserID
func newTestContext(t *testing.T, method, target string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, body)
	c.Set(ContextUserID, testUserID)
	return c, w
}
