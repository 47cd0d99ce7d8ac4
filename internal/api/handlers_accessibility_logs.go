package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

func (handler *Handler) RecordAccessibilityLog(c *fiber.Ctx) error {
	input := services.AccessibilityLogInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.services(c).accessibilityLogs.Record(pathUserID(c), input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) ListAccessibilityLogs(c *fiber.Ctx) error {
	limit, err := services.ResolveListLimit(c.Query("limit"))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}

	entries, err := handler.services(c).accessibilityLogs.ListRecent(pathUserID(c), limit)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(entries)
}
