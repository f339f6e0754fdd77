package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"basketlens/internal/basket"
	"basketlens/internal/dataset"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// jsonFromError maps domain errors onto the error envelope. Invalid input is
// the caller's to fix and keeps its message; anything unexpected is reported
// with fallback only.
func jsonFromError(c fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, basket.ErrInvalidInput):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, dataset.ErrNotLoaded):
		return jsonError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return jsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
