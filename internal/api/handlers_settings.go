package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

func (handler *Handler) ListSettings(c *fiber.Ctx) error {
	settings, err := handler.services(c).settings.ListSettings(pathUserID(c))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) UpsertSetting(c *fiber.Ctx) error {
	input := services.SettingInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	setting, err := handler.services(c).settings.UpsertSetting(pathUserID(c), input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Setting updated successfully",
		"setting": setting,
	})
}
