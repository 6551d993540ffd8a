package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs API requests with method, path, status and duration.
// Only /api routes are logged to keep static asset traffic out of the logs.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if !strings.HasPrefix(path, "/api") {
			return
		}
		log.Printf("%s %s %d in %s", c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
