package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe", NewAuthMiddleware(tokens).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := newProtectedRouter(service.NewTokenService("secret", time.Hour))

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router := newProtectedRouter(service.NewTokenService("secret", time.Hour))

	for _, header := range []string{"Token abc", "Bearer", "Bearer ", "bearer abc"} {
		rec := doRequest(router, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router := newProtectedRouter(service.NewTokenService("secret", time.Hour))

	rec := doRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthForeignToken(t *testing.T) {
	router := newProtectedRouter(service.NewTokenService("secret", time.Hour))

	foreign := service.NewTokenService("other-secret", time.Hour)
	token, _, err := foreign.Issue(&model.User{ID: uuid.New()})
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	router := newProtectedRouter(tokens)

	userID := uuid.New()
	token, _, err := tokens.Issue(&model.User{ID: userID, Name: "Ana", Email: "ana@example.com", Role: model.RoleUser})
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}
