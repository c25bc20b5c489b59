package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shelterhub/shelter-backend/utils"
)

type config struct {
	logger     *slog.Logger
	ignorePath []string
}

type LoggerOption func(*config)

// WithIgnorePath silences request logging for the given paths, e.g. the
// liveness probe polled by the orchestrator.
func WithIgnorePath(s []string) LoggerOption {
	return func(c *config) {
		c.ignorePath = s
	}
}

// NewLogging logs one line per request: status-derived level, latency, and
// the caller identity the gateway injected (when present).
func NewLogging(logger *slog.Logger, options ...LoggerOption) gin.HandlerFunc {
	l := &config{logger: logger}
	for _, option := range options {
		option(l)
	}

	ignore := make(map[string]struct{}, len(l.ignorePath))
	for _, path := range l.ignorePath {
		ignore[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := ignore[c.Request.URL.Path]; ok {
			return
		}

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		latency := time.Since(start).Milliseconds()
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", latency),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
		}
		// The credentials middleware runs after this one, so read them from
		// the request context only once the handler chain has returned.
		if creds := utils.CredentialsFromCtx(c.Request.Context()); creds.ActorId != "" {
			attributes = append(attributes,
				slog.String("actor_id", creds.ActorId),
				slog.String("role", creds.Role))
		}
		if c.Errors != nil {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}
		l.logger.LogAttrs(c.Request.Context(), level,
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
