package services

import (
	"errors"

	"github.com/terraincognita07/accessaid/internal/models"
)

var (
	ErrInvalidEmail         = models.NewValidationError("invalid email address")
	ErrInvalidPIN           = models.NewValidationError("pin must be exactly 4 digits")
	ErrNameRequired         = models.NewValidationError("name is required")
	ErrInvalidTimezone      = models.NewValidationError("invalid timezone")
	ErrEmailAlreadyExists   = models.NewValidationError("email already registered")
	ErrInvalidDatetime      = models.NewValidationError("invalid datetime format")
	ErrInvalidLimit         = models.NewValidationError("limit must be a positive integer")
	ErrInvalidPreferences   = models.NewValidationError("invalid accessibility preferences")
	ErrTitleRequired        = models.NewValidationError("title is required")
	ErrInvalidFrequency     = models.NewValidationError("invalid reminder frequency")
	ErrInvalidPriority      = models.NewValidationError("invalid priority")
	ErrInvalidTaskStatus    = models.NewValidationError("invalid task status")
	ErrInvalidNotification  = models.NewValidationError("invalid notification type")
	ErrInvalidNotifyStatus  = models.NewValidationError("invalid notification status")
	ErrContentRequired      = models.NewValidationError("content is required")
	ErrInvalidSpeechRate    = models.NewValidationError("speech_rate must be greater than zero")
	ErrInvalidVolume        = models.NewValidationError("volume must not be negative")
	ErrSettingNameRequired  = models.NewValidationError("setting_name is required")
	ErrDeviceIDRequired     = models.NewValidationError("device_identifier is required")
	ErrInvalidSyncStatus    = models.NewValidationError("invalid sync status")
	ErrFeatureRequired      = models.NewValidationError("feature_used and action are required")
	ErrModelFieldsRequired  = models.NewValidationError("model_name, model_type and version are required")
	ErrInvalidAccuracyScore = models.NewValidationError("accuracy_score must be between 0 and 1")

	ErrUserNotFound         = models.NewNotFoundError("user not found")
	ErrTaskNotFound         = models.NewNotFoundError("task not found")
	ErrReminderNotFound     = models.NewNotFoundError("reminder not found")
	ErrNotificationNotFound = models.NewNotFoundError("notification not found")
	ErrMLModelNotFound      = models.NewNotFoundError("ml model not found")

	ErrNotificationTransition = &models.KindError{
		Kind:    models.ErrConstraintViolation,
		Message: "notification status can only change from pending",
	}

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
)

type UserExistenceRepository interface {
	Exists(userID uint) (bool, error)
}

func requireUser(users UserExistenceRepository, userID uint) error {
	exists, err := users.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

// ownedOrNotFound hides rows owned by someone else behind the entity's
// not-found error.
func ownedOrNotFound(err error, rowOwnerID uint, ownerID uint, notFound error) error {
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return notFound
		}
		return err
	}
	if rowOwnerID != ownerID {
		return notFound
	}
	return nil
}
