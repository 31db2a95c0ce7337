package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/api/handlers"
	"github.com/maxaizer/job-board/internal/services"
)

// Session resolves the session cookie into a user on the request context.
// It never rejects: endpoints that need a user pair it with RequireAuth.
func Session(sessions *services.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(handlers.SessionCookie); err == nil {
			if user, ok := sessions.User(token); ok {
				c.Set(handlers.UserContextKey, user)
			}
		}
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(handlers.UserContextKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		c.Next()
	}
}
