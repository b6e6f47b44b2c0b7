package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDHeader carries the requesting user's id. Authentication itself is
// handled upstream of this service; the header is trusted as-resolved.
const userIDHeader = "X-User-ID"

// RequireUserID resolves the requesting user's id from the request header and
// stores it in both the Gin context and the request context. Requests without
// a user id are rejected.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			GetLoggerFromCtx(c.Request.Context()).Warn("Request missing user id header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing " + userIDHeader + " header"})
			return
		}

		c.Set(string(userIDKey), userID)
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
