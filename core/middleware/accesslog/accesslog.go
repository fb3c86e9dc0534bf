package accesslog

import (
	"errors"
	"time"

	"devserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New creates a middleware that writes one log line per request once the rest of
// the chain has returned.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not rendered the response yet.
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}

		reqLog := logger.WithRayID(l, c)
		switch {
		case status >= fiber.StatusInternalServerError:
			reqLog.Error("Request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			reqLog.Warn("Request", fields...)
		default:
			reqLog.Info("Request", fields...)
		}
		return err
	}
}
