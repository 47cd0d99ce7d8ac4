package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

func (handler *Handler) ListDevices(c *fiber.Ctx) error {
	devices, err := handler.services(c).devices.ListForUser(pathUserID(c))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(devices)
}

func (handler *Handler) SyncDevice(c *fiber.Ctx) error {
	input := services.DeviceSyncInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	device, created, err := handler.services(c).devices.Sync(pathUserID(c), input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(device)
}
