package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devforum-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func testController() *Controller {
	gin.SetMode(gin.TestMode)
	return &Controller{Secret: testSecret}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	ct := testController()
	r := gin.New()
	r.POST("/jwt", ct.IssueToken)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// Presenting the issued credential yields the same identity claim back.
	claims, err := middleware.ParseToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, resp.Token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestIssueTokenRejectsBadPayload(t *testing.T) {
	ct := testController()
	r := gin.New()
	r.POST("/jwt", ct.IssueToken)

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	ct := testController()
	r := gin.New()
	r.GET("/logout", ct.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
