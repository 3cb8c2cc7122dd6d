package middleware

import (
	"strings"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/response"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Authenticator resolves an access token to its caller
type Authenticator interface {
	Authenticate(token string) (models.Session, error)
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(constants.AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware admits requests carrying a valid token, from the
// Authorization header or the auth cookie. With roles given, the caller
// must hold one of them.
func AuthMiddleware(auth Authenticator, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		session, err := auth.Authenticate(token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		session.ID = c.GetString(sessionIDKey)

		if len(roles) > 0 && !hasRole(session.Role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Set("userID", session.UserID)
		c.Set("userRole", session.Role)
		c.Next()
	}
}

// RoleMiddleware narrows an authenticated group to the given roles
func RoleMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !hasRole(session.Role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func hasRole(role int, roles []int) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// SessionFrom returns the caller stored by AuthMiddleware
func SessionFrom(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}

// ErrorHandler answers errors attached with c.Error when the handler wrote
// nothing itself
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if errors.IsAppError(err) {
			response.FromError(c, err)
			return
		}
		response.ServerError(c)
	}
}
