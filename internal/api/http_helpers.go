package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/models"
	"github.com/terraincognita07/accessaid/internal/services"
)

var errInvalidID = errors.New("invalid id")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// apiErrorFromService is the single place where error kinds become HTTP
// statuses. Unclassified errors are logged and hidden behind a 500.
func (handler *Handler) apiErrorFromService(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserInactive):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrValidation):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrConstraintViolation):
		return apiError(c, fiber.StatusConflict, err.Error())
	}

	handler.logger.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals("requestid")).
		Msg("request failed")
	return apiError(c, fiber.StatusInternalServerError, "internal server error")
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errInvalidID
	}
	return uint(value), nil
}

// parseJSONBody decodes the request body into target. An empty body leaves
// target untouched.
func parseJSONBody(c *fiber.Ctx, target any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(target)
}

func messageResponse(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}
