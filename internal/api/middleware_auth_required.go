package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/models"
	"github.com/terraincognita07/accessaid/internal/services"
)

// AuthRequired resolves the bearer token to an active user and stores it in
// the request locals.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !user.IsActive {
		return apiError(c, fiber.StatusForbidden, services.ErrUserInactive.Error())
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	tokenValue, ok := bearerToken(c)
	if !ok {
		return nil, errors.New("missing bearer token")
	}

	claims, err := handler.parseToken(tokenValue)
	if err != nil {
		return nil, err
	}

	user, err := handler.services(c).auth.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
