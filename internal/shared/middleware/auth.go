package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"poems-backend/internal/shared/response"
	"poems-backend/pkg/jwt"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "session"

// userIDKey is the gin context key the authenticated user id is stored under.
const userIDKey = "userID"

// RequireSession authenticates the session cookie and aborts with 401 when
// it is missing, malformed, expired or carries a bad signature.
func RequireSession(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveSession(c, manager)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalSession resolves the session cookie when present and valid, and
// continues unauthenticated otherwise. A broken cookie is never an error.
func OptionalSession(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveSession(c, manager); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// resolveSession reads and verifies the session cookie. Fails closed to
// "no session" on every kind of failure.
func resolveSession(c *gin.Context, manager *jwt.Manager) (uuid.UUID, bool) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return uuid.Nil, false
	}

	claims, err := manager.ValidateSessionToken(raw)
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// CurrentUserID returns the authenticated user id set by the session middleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := v.(uuid.UUID)
	return userID, ok
}
