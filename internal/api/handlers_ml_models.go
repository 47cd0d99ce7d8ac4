package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

func (handler *Handler) ListMLModels(c *fiber.Ctx) error {
	catalog, err := handler.services(c).mlModels.List(c.QueryBool("active", false))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(catalog)
}

func (handler *Handler) GetMLModel(c *fiber.Ctx) error {
	modelID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid model id")
	}

	model, err := handler.services(c).mlModels.Get(modelID)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(model)
}

func (handler *Handler) RegisterMLModel(c *fiber.Ctx) error {
	input := services.MLModelInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	model, err := handler.services(c).mlModels.Register(input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(model)
}
