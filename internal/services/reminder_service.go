package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
)

type ReminderRepository interface {
	Create(reminder *models.Reminder) error
	FindByID(reminderID uint) (models.Reminder, error)
	ListByUser(userID uint) ([]models.Reminder, error)
	Save(reminder *models.Reminder) error
	DeleteWithNotifications(reminderID uint) error
}

type ReminderInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ReminderDatetime string `json:"reminder_datetime"`
	Frequency        string `json:"frequency"`
	Priority         string `json:"priority"`
}

type ReminderPatch struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	ReminderDatetime *string `json:"reminder_datetime"`
	Frequency        *string `json:"frequency"`
	Priority         *string `json:"priority"`
	IsActive         *bool   `json:"is_active"`
	IsCompleted      *bool   `json:"is_completed"`
}

type ReminderService struct {
	users     UserExistenceRepository
	reminders ReminderRepository
	now       func() time.Time
}

func NewReminderService(users UserExistenceRepository, reminders ReminderRepository) *ReminderService {
	return &ReminderService{users: users, reminders: reminders, now: utcNow}
}

func (service *ReminderService) ListForUser(userID uint) ([]models.Reminder, error) {
	if err := requireUser(service.users, userID); err != nil {
		return nil, err
	}
	return service.reminders.ListByUser(userID)
}

func (service *ReminderService) Create(userID uint, input ReminderInput) (models.Reminder, error) {
	if err := requireUser(service.users, userID); err != nil {
		return models.Reminder{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Reminder{}, ErrTitleRequired
	}
	frequency, err := normalizeFrequency(input.Frequency)
	if err != nil {
		return models.Reminder{}, err
	}
	priority, err := normalizePriority(input.Priority)
	if err != nil {
		return models.Reminder{}, err
	}

	now := service.now()
	scheduledAt, err := ResolveReminderDatetime(input.ReminderDatetime, now)
	if err != nil {
		return models.Reminder{}, err
	}

	reminder := models.Reminder{
		UserID:           userID,
		Title:            title,
		Description:      strings.TrimSpace(input.Description),
		ReminderDatetime: scheduledAt,
		Frequency:        frequency,
		Priority:         priority,
		IsActive:         true,
		IsCompleted:      false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := service.reminders.Create(&reminder); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (service *ReminderService) FindForOwner(ownerID uint, reminderID uint) (models.Reminder, error) {
	reminder, err := service.reminders.FindByID(reminderID)
	if err := ownedOrNotFound(err, reminder.UserID, ownerID, ErrReminderNotFound); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

// Update applies the non-nil fields of patch. Every field is validated before
// anything is written. Completing an open reminder stamps completed_at;
// repeating the completion or reopening leaves the previous stamp in place.
func (service *ReminderService) Update(ownerID uint, reminderID uint, patch ReminderPatch) (models.Reminder, error) {
	reminder, err := service.FindForOwner(ownerID, reminderID)
	if err != nil {
		return models.Reminder{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.Reminder{}, ErrTitleRequired
		}
		reminder.Title = title
	}
	if patch.Description != nil {
		reminder.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.ReminderDatetime != nil {
		scheduledAt, err := ParseInstant(*patch.ReminderDatetime)
		if err != nil {
			return models.Reminder{}, err
		}
		reminder.ReminderDatetime = scheduledAt
	}
	if patch.Frequency != nil {
		frequency, err := normalizeFrequency(*patch.Frequency)
		if err != nil {
			return models.Reminder{}, err
		}
		reminder.Frequency = frequency
	}
	if patch.Priority != nil {
		priority, err := normalizePriority(*patch.Priority)
		if err != nil {
			return models.Reminder{}, err
		}
		reminder.Priority = priority
	}
	if patch.IsActive != nil {
		reminder.IsActive = *patch.IsActive
	}

	now := service.now()
	if patch.IsCompleted != nil {
		if *patch.IsCompleted && !reminder.IsCompleted {
			completedAt := now
			reminder.CompletedAt = &completedAt
		}
		reminder.IsCompleted = *patch.IsCompleted
	}
	reminder.UpdatedAt = now

	if err := service.reminders.Save(&reminder); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (service *ReminderService) Delete(ownerID uint, reminderID uint) error {
	if _, err := service.FindForOwner(ownerID, reminderID); err != nil {
		return err
	}
	return service.reminders.DeleteWithNotifications(reminderID)
}

func normalizeFrequency(raw string) (string, error) {
	frequency := strings.ToLower(strings.TrimSpace(raw))
	if frequency == "" {
		return models.FrequencyOnce, nil
	}
	if !models.IsFrequency(frequency) {
		return "", ErrInvalidFrequency
	}
	return frequency, nil
}

func normalizePriority(raw string) (string, error) {
	priority := strings.ToLower(strings.TrimSpace(raw))
	if priority == "" {
		return models.PriorityMedium, nil
	}
	if !models.IsPriority(priority) {
		return "", ErrInvalidPriority
	}
	return priority, nil
}
