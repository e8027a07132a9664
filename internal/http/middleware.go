package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quantumauth-io/payment-info/internal/logging"
)

// withLoopbackOnly rejects peers that are not on the loopback interface and
// Host headers that do not name the local machine.
func withLoopbackOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isLoopbackRequest(c.Request) {
			abortError(c, http.StatusForbidden, HTTPErrorForbiddenText)
			return
		}
		if !isSafeLocalHost(c.Request.Host) {
			abortError(c, http.StatusForbidden, HTTPErrorForbiddenHostText)
			return
		}
		c.Next()
	}
}

// withCORS allows the configured UI origins only. An empty list means
// same-origin only.
func withCORS(origins []string) gin.HandlerFunc {
	origins = uniqueOrigins(origins)
	if len(origins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       corsMaxAgeSeconds * time.Second,
	})
}

func withRequestLog(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		kv := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start).String(),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("http request", kv...)
			return
		}
		logger.Info("http request", kv...)
	}
}
