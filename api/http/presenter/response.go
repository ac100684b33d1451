package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// InternalErrorResponse is the body of unhandled 500s.
type InternalErrorResponse struct {
	Error InternalError `json:"error"`
}

type InternalError struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

func Internal(c *fiber.Ctx, message string) error {
	return JSON(c, fiber.StatusInternalServerError, InternalErrorResponse{Error: InternalError{Message: message}})
}

// Fail renders a coded application error with the matching HTTP status.
// Errors without a code are returned to the fiber error handler.
func Fail(c *fiber.Ctx, err error) error {
	var e *apperr.Error
	if !errors.As(err, &e) {
		return err
	}
	resp := ErrorResponse{Error: e.Message, Code: string(e.Code)}
	if e.Code == apperr.CodeValidation {
		resp.Details = e.Details
	}
	return JSON(c, StatusFor(e.Code), resp)
}

func StatusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeUpstream, apperr.CodeCalendar:
		return http.StatusBadGateway
	case apperr.CodeConfiguration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
