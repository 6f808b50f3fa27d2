package server

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// envelope is the shape of every /api response.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type messageData struct {
	Message string `json:"message"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, data any) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	respondError(c, status, messageData{Message: message})
}

func exceptionMessage(v any) string {
	return fmt.Sprintf("Exception: %v", v)
}

// recovery turns a panic into the generic failure payload.
func recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		slog.Error("Handler panicked", "path", c.FullPath(), "panic", recovered)
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(recovered))
	})
}

// requestLogger logs every request through slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelDebug

		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		slog.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(started),
		)
	}
}

// requireToken rejects requests without the configured bearer token. An
// empty token disables the check.
func requireToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		presented, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			respondMessage(c, http.StatusForbidden, "Unauthorized")
			return
		}

		c.Next()
	}
}

func metricsHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
