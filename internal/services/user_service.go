package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/accessaid/internal/models"
)

type UserRepository interface {
	List() ([]models.User, error)
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
	DeleteAccountAndRelatedData(userID uint) error
}

type UserProfilePatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Timezone  *string `json:"timezone"`
	IsActive  *bool   `json:"is_active"`
}

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) List() ([]models.User, error) {
	return service.users.List()
}

func (service *UserService) Get(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *UserService) UpdateProfile(userID uint, patch UserProfilePatch) (models.User, error) {
	updates := make(map[string]any)
	if patch.FirstName != nil {
		firstName := strings.TrimSpace(*patch.FirstName)
		if firstName == "" {
			return models.User{}, ErrNameRequired
		}
		updates["first_name"] = firstName
	}
	if patch.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*patch.LastName)
	}
	if patch.Timezone != nil {
		timezone, err := NormalizeTimezone(*patch.Timezone)
		if err != nil {
			return models.User{}, err
		}
		if timezone == "" {
			timezone = models.DefaultTimezone
		}
		updates["timezone"] = timezone
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	if len(updates) > 0 {
		if err := service.users.UpdateByID(userID, updates); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return models.User{}, ErrUserNotFound
			}
			return models.User{}, err
		}
	}
	return service.Get(userID)
}

// Delete removes the user together with everything the user owns.
func (service *UserService) Delete(userID uint) error {
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
