package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs HTTP requests.
// It logs on request completion with method, path, status, duration, and
// the invoked tool name when routed through the invocation endpoint.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			duration := time.Since(start)
			reqID := GetRequestID(c)

			req := c.Request()
			res := c.Response()

			// Determine log level based on status code
			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event = event.
				Str("request_id", reqID).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP())

			if tool := c.Param("name"); tool != "" {
				event = event.Str("tool", tool)
			}

			event.Msg("HTTP request")

			// Return nil since we already handled the error via c.Error()
			return nil
		}
	}
}
