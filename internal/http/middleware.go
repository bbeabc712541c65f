package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/emmaderbe/SocialApp/pkg/logger"
)

const requestIDKey = "request_id"

// RequestIDMiddleware propagates X-Request-ID, generating one when the client sends none.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(requestIDKey, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs one line per request, leveled by response status.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			requestID, _ := c.Get(requestIDKey).(string)
			args := []any{
				"module", "http",
				"action", "request",
				"resource", "api",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestID,
			}

			switch {
			case status >= 500:
				logger.Error("request completed", append(args, "result", "failed")...)
			case status >= 400:
				logger.Warn("request completed", append(args, "result", "failed")...)
			default:
				logger.Debug("request completed", append(args, "result", "ok")...)
			}
			return nil
		}
	}
}
