package middleware

import (
	"strings"

	"anoa.com/redsocial/internal/service"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokens service.TokenService
}

func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates the Authorization header and puts the decoded
// identity into the request context. Missing, expired and invalid tokens
// fail with distinct messages, all 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperror.ErrMissingToken)
			return
		}

		// The Bearer prefix is case sensitive.
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			abortWith(c, apperror.ErrMissingToken)
			return
		}

		claims, err := m.tokens.Parse(tokenString)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("claims", claims)
		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	c.JSON(apperror.MapErrorToStatus(err), gin.H{"error": err.Error()})
	c.Abort()
}
