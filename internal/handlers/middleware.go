package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// AuthRequired gates a route behind a valid bearer token. On success the
// subject user id is placed in the request context under userIDKey.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			respondMessage(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		userID, err := h.tokens.Verify(token)
		if err != nil {
			// Expired, malformed and badly signed tokens are distinct error
			// kinds but all mean the same thing to the client.
			respondMessage(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
