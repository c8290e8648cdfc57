package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request, choosing the level from the status code.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		req := c.Request
		status := c.Writer.Status()

		fields := []slog.Attr{
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", req.Method),
			slog.String("uri", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.ClientIP()),
			slog.String("user_agent", req.UserAgent()),
		}

		if len(req.URL.RawQuery) > 0 {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, slog.String("error", c.Errors.String()))
		}

		logLevel := slog.LevelInfo
		if status >= 400 {
			logLevel = slog.LevelWarn
		}
		if status >= 500 {
			logLevel = slog.LevelError
		}

		logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
	}
}
