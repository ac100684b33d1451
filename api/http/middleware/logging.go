package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/api/http/presenter"
	"github.com/akunal1/smart-resume-backend/pkg/apperr"
)

// RequestLogger logs one line per request after the handler chain finishes.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// The error handler runs after this middleware returns.
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			var ae *apperr.Error
			switch {
			case errors.As(err, &fe):
				status = fe.Code
			case errors.As(err, &ae):
				status = presenter.StatusFor(ae.Code)
			}
		}
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("request", fields...)
		} else {
			log.Info("request", fields...)
		}
		return err
	}
}
