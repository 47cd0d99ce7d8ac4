package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/models"
	"github.com/terraincognita07/accessaid/internal/services"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.services(c).users.List()
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.services(c).users.Get(userID)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	patch := services.UserProfilePatch{}
	if err := parseJSONBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.services(c).users.UpdateProfile(pathUserID(c), patch)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID := pathUserID(c)
	if err := handler.services(c).users.Delete(userID); err != nil {
		return handler.apiErrorFromService(c, err)
	}

	handler.logger.Info().Uint("user_id", userID).Msg("user account deleted")
	return messageResponse(c, "User deleted successfully")
}

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	preferences, err := handler.services(c).settings.Preferences(pathUserID(c))
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(preferences)
}

// ReplacePreferences overwrites the whole document. Fields the client omits
// fall back to their defaults, not to the stored values.
func (handler *Handler) ReplacePreferences(c *fiber.Ctx) error {
	preferences := models.DefaultAccessibilityPreferences()
	if err := parseJSONBody(c, &preferences); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	stored, err := handler.services(c).settings.ReplacePreferences(pathUserID(c), preferences)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}
	return c.JSON(stored)
}
