package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("123456", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.True(t, CheckPasswordHash("123456", hash))
	assert.False(t, CheckPasswordHash("654321", hash))
}

func authRouter(a *Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/private", a.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userId"))
	})
	return r
}

func TestAuthenticator_Middleware(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Hour)
	token, err := a.GenerateToken("410544b2-4001-4271-9855-fec4b6a6442a", "user@nextmail.com")
	require.NoError(t, err)

	r := authRouter(a)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "410544b2-4001-4271-9855-fec4b6a6442a", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticator_Middleware_Rejects(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Hour)
	other, err := NewAuthenticator("other-secret", time.Hour).GenerateToken("u", "e")
	require.NoError(t, err)

	r := authRouter(a)
	for name, header := range map[string]string{"missing": "", "wrong secret": "Bearer " + other, "garbage": "Bearer nope"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestAuthenticator_GenerateToken_RequiresSecret(t *testing.T) {
	_, err := NewAuthenticator("", time.Hour).GenerateToken("u", "e")
	assert.Error(t, err)
}
