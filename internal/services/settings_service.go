package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
)

const maxSettingNameLength = 100

type SettingsUserRepository interface {
	Exists(userID uint) (bool, error)
	FindByID(userID uint) (models.User, error)
	UpdatePreferences(userID uint, preferences models.AccessibilityPreferences) error
}

type UserSettingRepository interface {
	ListByUser(userID uint) ([]models.UserSetting, error)
	Upsert(userID uint, name string, value string, now time.Time) (models.UserSetting, error)
}

type SettingInput struct {
	SettingName  string `json:"setting_name"`
	SettingValue string `json:"setting_value"`
}

// SettingsService owns both per-user configuration stores: the typed
// preference document on the user row and the free-form setting rows. The
// two are never merged.
type SettingsService struct {
	users    SettingsUserRepository
	settings UserSettingRepository
	now      func() time.Time
}

func NewSettingsService(users SettingsUserRepository, settings UserSettingRepository) *SettingsService {
	return &SettingsService{users: users, settings: settings, now: utcNow}
}

func (service *SettingsService) ListSettings(userID uint) ([]models.UserSetting, error) {
	if err := requireUser(service.users, userID); err != nil {
		return nil, err
	}
	return service.settings.ListByUser(userID)
}

func (service *SettingsService) UpsertSetting(userID uint, input SettingInput) (models.UserSetting, error) {
	if err := requireUser(service.users, userID); err != nil {
		return models.UserSetting{}, err
	}

	name := strings.TrimSpace(input.SettingName)
	if name == "" || len(name) > maxSettingNameLength {
		return models.UserSetting{}, ErrSettingNameRequired
	}
	return service.settings.Upsert(userID, name, input.SettingValue, service.now())
}

func (service *SettingsService) Preferences(userID uint) (models.AccessibilityPreferences, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.AccessibilityPreferences{}, ErrUserNotFound
		}
		return models.AccessibilityPreferences{}, err
	}
	return user.AccessibilityPreferences, nil
}

// ReplacePreferences stores preferences as the user's whole document.
func (service *SettingsService) ReplacePreferences(userID uint, preferences models.AccessibilityPreferences) (models.AccessibilityPreferences, error) {
	if err := requireUser(service.users, userID); err != nil {
		return models.AccessibilityPreferences{}, err
	}

	normalized, err := NormalizeAccessibilityPreferences(preferences)
	if err != nil {
		return models.AccessibilityPreferences{}, err
	}
	if err := service.users.UpdatePreferences(userID, normalized); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.AccessibilityPreferences{}, ErrUserNotFound
		}
		return models.AccessibilityPreferences{}, err
	}
	return normalized, nil
}
