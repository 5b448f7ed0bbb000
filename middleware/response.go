package middleware

import (
	"errors"

	"lms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse maps a services error kind onto its HTTP status
func ErrorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrBadRequest):
		status = fiber.StatusBadRequest
	}

	var appErr *services.Error
	if status == fiber.StatusInternalServerError || !errors.As(err, &appErr) {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
	return JsonResponse(c, status, false, appErr.Message, nil)
}

// ErrorHandler is the fiber.Config ErrorHandler: fiber errors keep their
// code, everything else goes through ErrorResponse
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonResponse(c, fe.Code, false, fe.Message, nil)
	}
	return ErrorResponse(c, err)
}
