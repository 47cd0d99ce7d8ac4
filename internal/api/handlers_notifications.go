package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

type notificationStatusInput struct {
	Status string `json:"status"`
}

func (handler *Handler) ListReminderNotifications(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	notifications, err := handler.services(c).notifications.ListForReminder(user.ID, reminderID)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(notifications)
}

func (handler *Handler) CreateNotification(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	input := services.NotificationInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	notification, err := handler.services(c).notifications.Create(user.ID, reminderID, input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(notification)
}

func (handler *Handler) ListUserNotifications(c *fiber.Ctx) error {
	notifications, err := handler.services(c).notifications.ListForUser(pathUserID(c), c.Query("status"))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(notifications)
}

func (handler *Handler) UpdateNotificationStatus(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	input := notificationStatusInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	notification, err := handler.services(c).notifications.UpdateStatus(user.ID, notificationID, input.Status)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(notification)
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	notification, err := handler.services(c).notifications.MarkRead(user.ID, notificationID)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(notification)
}
