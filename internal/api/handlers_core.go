package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AccessAid API is running!",
		"status":  "healthy",
	})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readiness also checks that the store answers.
func (handler *Handler) Readiness(c *fiber.Ctx) error {
	if err := handler.repositories.Ping(c.UserContext()); err != nil {
		handler.logger.Error().Err(err).Msg("store ping failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) SeedData(c *fiber.Ctx) error {
	if !handler.seedEnabled {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	summary, err := handler.newSeeder().Run(c.UserContext())
	if err != nil {
		handler.logger.Error().Err(err).Msg("seed data failed")
		return apiError(c, fiber.StatusInternalServerError, "error seeding database")
	}

	message := "Database seeded successfully with sample data"
	if summary.Skipped {
		message = "Sample data already present"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"summary": summary,
	})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return apiError(c, fiber.StatusNotFound, "page not found")
}
