package middleware

import (
	"net/http"
	"strings"

	"hardware_store/internal/auth"
	"hardware_store/internal/models"
	"hardware_store/internal/repository"

	"github.com/gin-gonic/gin"
)

const userContextKey = "current_user"

type AuthMiddleware struct {
	tokens   *auth.Manager
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens *auth.Manager, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, userRepo: userRepo}
}

func (m *AuthMiddleware) resolveUser(c *gin.Context) *models.User {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	claims, err := m.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil || claims.TokenType != auth.TokenTypeAccess {
		return nil
	}

	user, err := m.userRepo.GetByID(claims.UserID)
	if err != nil || !user.IsActive {
		return nil
	}
	return user
}

// RequireAuth rejects requests without a valid bearer access token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := m.resolveUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is presented but lets
// anonymous requests through. Used by checkout and job-site creation.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := m.resolveUser(c); user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user from the request context, or
// nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
