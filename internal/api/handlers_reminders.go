package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	reminders, err := handler.services(c).reminders.ListForUser(pathUserID(c))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(reminders)
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	input := services.ReminderInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reminder, err := handler.services(c).reminders.Create(pathUserID(c), input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(reminder)
}

func (handler *Handler) UpdateReminder(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	patch := services.ReminderPatch{}
	if err := parseJSONBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reminder, err := handler.services(c).reminders.Update(user.ID, reminderID, patch)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(reminder)
}

func (handler *Handler) DeleteReminder(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	if err := handler.services(c).reminders.Delete(user.ID, reminderID); err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return messageResponse(c, "Reminder deleted successfully")
}
