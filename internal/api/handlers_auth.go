package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/accessaid/internal/services"
)

type loginInput struct {
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := services.RegistrationInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.services(c).auth.Register(input)
	if err != nil {
		return handler.apiErrorFromService(c, err)
	}

	handler.logger.Info().Uint("user_id", user.ID).Msg("user registered")
	return handler.authResponse(c, &user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := loginLimiterKey(c, input.Email)
	now := handler.now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.services(c).auth.Authenticate(input.Email, input.PIN)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
			handler.logger.Warn().Str("ip", c.IP()).Msg("login rejected")
		}
		return handler.apiErrorFromService(c, err)
	}

	handler.loginLimiter.reset(limiterKey)
	return handler.authResponse(c, &user)
}
