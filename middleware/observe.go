package middleware

import (
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"

	"github.com/gin-gonic/gin"
)

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

// Metrics records count and latency per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTP(routeOf(c), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

// Logger writes one line per request
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.Info("%s %s %d %v %s", c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
		if len(c.Errors) > 0 {
			log.Error("%s %s: %s", c.Request.Method, path, c.Errors.String())
		}
	}
}

// Recovery turns a panic into the generic 500 envelope
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				if !c.Writer.Written() {
					response.ServerError(c)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
