package web

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gojira/gojira/internal/web/view"
)

// StatusCode maps an error returned by a handler to its HTTP status.
func StatusCode(err error) int {
	var fe *fiber.Error

	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, view.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, view.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler answers handler errors with their status and a plain text body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusCode(err)

	event := log.Debug()
	if code >= fiber.StatusInternalServerError {
		event = log.Error()
	}

	event.Err(err).Int("status", code).Str("path", c.OriginalURL()).Msg("request failed")

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return c.Status(code).SendString(http.StatusText(code))
}
