package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	tasks, err := handler.services(c).tasks.ListForUser(pathUserID(c), c.Query("status"))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(tasks)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	input := services.TaskInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.services(c).tasks.Create(pathUserID(c), input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	patch := services.TaskPatch{}
	if err := parseJSONBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.services(c).tasks.Update(user.ID, taskID, patch)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := handler.services(c).tasks.Delete(user.ID, taskID); err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return messageResponse(c, "Task deleted successfully")
}
