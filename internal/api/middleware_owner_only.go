package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

const contextPathUserKey = "path_user_id"

// OwnerOnly guards /users/:id routes. A missing user is reported before an
// ownership mismatch.
func (handler *Handler) OwnerOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	exists, err := handler.repositories.WithContext(c.UserContext()).Users.Exists(userID)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	if !exists {
		return apiError(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}
	if user.ID != userID {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}

	c.Locals(contextPathUserKey, userID)
	return c.Next()
}

func pathUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(contextPathUserKey).(uint)
	return userID
}
