package middleware

import (
	"github.com/mikosha12/Hulu-beand-mern-b/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "sessionId"

// SessionMiddleware tags every request with a browser session id, reusing
// the client's X-Session-ID when sent
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(constants.SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(sessionIDKey, sessionID)
		c.Writer.Header().Set(constants.SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the id set by SessionMiddleware
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
