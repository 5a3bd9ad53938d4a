package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quizapp-service/internal/repository"
)

const (
	// ContextUserID is the gin context key the middleware sets for handlers.
	ContextUserID = "userID"
	// ContextSession holds the full hydrated session.
	ContextSession = "session"
	// ContextSessionID holds the Redis session id, needed for sign-out.
	ContextSessionID = "sessionID"
)

// RequireSession verifies the bearer token and hydrates the session from
// Redis. A token whose session was deleted (sign-out) is rejected even if
// it has not expired yet.
func RequireSession(jwtService *JWTService, sessions *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_TOKEN",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid session token",
				"code":  "INVALID_TOKEN",
			})
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired or signed out",
				"code":  "SESSION_NOT_FOUND",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextSession, session)
		c.Set(ContextSessionID, claims.SessionID)
		c.Next()
	}
}

// OptionalSession resolves a session when a token is present but lets
// anonymous requests through. Public listings use it to attach per-user
// scores for signed-in callers.
func OptionalSession(jwtService *JWTService, sessions *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}
		claims, err := jwtService.VerifyToken(token)
		if err != nil {
			c.Next()
			return
		}
		session, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ContextUserID, session.UserID)
		c.Set(ContextSession, session)
		c.Next()
	}
}

// UserID returns the signed-in user's id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func bearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
