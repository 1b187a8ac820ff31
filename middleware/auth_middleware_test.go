package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func authRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken(testSecret, "alice@example.com", "Alice")
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token, err := NewToken(testSecret, "alice@example.com", "")
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token+"x")
	assert.Error(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, tokenString)
	assert.Error(t, err)
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := authRouter(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthCookie(t *testing.T) {
	r := authRouter(testSecret)
	token, err := NewToken(testSecret, "alice@example.com", "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestRequireAuthBearerFallback(t *testing.T) {
	r := authRouter(testSecret)
	token, err := NewToken(testSecret, "bob@example.com", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob@example.com")
}

func TestRequireAuthBadToken(t *testing.T) {
	r := authRouter(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func adminRouter(lookup RoleLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAuth(testSecret), RequireAdmin(lookup), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	roles := map[string]string{
		"admin@example.com": "admin",
		"user@example.com":  "user",
	}
	lookup := func(ctx context.Context, email string) (string, error) {
		return roles[email], nil
	}

	cases := []struct {
		email string
		want  int
	}{
		{"admin@example.com", http.StatusOK},
		{"user@example.com", http.StatusForbidden},
		{"ghost@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		r := adminRouter(lookup)
		token, err := NewToken(testSecret, tc.email, "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.want, w.Code, "email %s", tc.email)
	}
}

func TestRequireAdminLookupError(t *testing.T) {
	lookup := func(ctx context.Context, email string) (string, error) {
		return "", errors.New("storage down")
	}
	r := adminRouter(lookup)
	token, err := NewToken(testSecret, "admin@example.com", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
