package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devforum-api/controllers"
	"devforum-api/database"
	"devforum-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, controllers.New(&database.Mongo{}, testSecret))
	return r
}

func TestReportUploadRequiresAuth(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report/upload",
		strings.NewReader(`{"email":"anon@example.com","feedback":"spam"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReportUploadReachableWithToken(t *testing.T) {
	r := testRouter()
	token, err := middleware.NewToken(testSecret, "alice@example.com", "")
	require.NoError(t, err)

	// Empty body fails validation, which proves the gate passed and the
	// handler ran.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report/upload", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGatedWritesRejectAnonymous(t *testing.T) {
	r := testRouter()

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/post"},
		{http.MethodPost, "/comments"},
		{http.MethodPost, "/payments"},
		{http.MethodDelete, "/report/deleted/65b1f0c2a4e5d6f7a8b9c0d1"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}
