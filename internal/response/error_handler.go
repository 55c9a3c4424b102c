package response

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/lunahq/accounts-api/internal/httperr"
)

// ErrorHandler is the app-level Fiber error handler. Structured service
// errors keep their status and payload; anything else collapses to the
// generic error envelope, with details hidden for 5xx.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var herr *httperr.Error
	if errors.As(err, &herr) {
		return c.Status(herr.Status).JSON(Envelope{
			StatusCode: herr.Status,
			Code:       herr.Code,
			Message:    herr.Message(),
		})
	}

	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(Envelope{
		StatusCode: code,
		Code:       httperr.DefaultCode,
		Message:    message,
	})
}
