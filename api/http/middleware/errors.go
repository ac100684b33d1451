package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/api/http/presenter"
	"github.com/akunal1/smart-resume-backend/pkg/apperr"
)

// ErrorHandler is the last stop for errors returned by handlers. Internal
// error text reaches the caller only in development.
func ErrorHandler(log *zap.Logger, development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return presenter.Error(c, fe.Code, fe.Message)
		}
		var ae *apperr.Error
		if errors.As(err, &ae) {
			log.Warn("request failed", zap.String("path", c.Path()), zap.Error(err))
			return presenter.Fail(c, ae)
		}
		log.Error("unhandled error", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
		msg := "Internal server error"
		if development {
			msg = err.Error()
		}
		return presenter.Internal(c, msg)
	}
}

// NotFound answers every unmatched route.
func NotFound(c *fiber.Ctx) error {
	return presenter.Error(c, fiber.StatusNotFound, "Not found")
}
