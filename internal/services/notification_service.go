package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
)

type NotificationReminderRepository interface {
	FindByID(reminderID uint) (models.Reminder, error)
}

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(notificationID uint) (models.Notification, error)
	ListByReminder(reminderID uint) ([]models.Notification, error)
	ListByUser(userID uint, status string) ([]models.Notification, error)
	Save(notification *models.Notification) error
}

type NotificationInput struct {
	NotificationType string `json:"notification_type"`
	Message          string `json:"message"`
	ScheduledTime    string `json:"scheduled_time"`
}

// NotificationService records notifications against reminders. Nothing here
// delivers them; status changes come from clients reporting delivery.
type NotificationService struct {
	users         UserExistenceRepository
	reminders     NotificationReminderRepository
	notifications NotificationRepository
	now           func() time.Time
}

func NewNotificationService(users UserExistenceRepository, reminders NotificationReminderRepository, notifications NotificationRepository) *NotificationService {
	return &NotificationService{
		users:         users,
		reminders:     reminders,
		notifications: notifications,
		now:           utcNow,
	}
}

func (service *NotificationService) findReminder(ownerID uint, reminderID uint) (models.Reminder, error) {
	reminder, err := service.reminders.FindByID(reminderID)
	if err := ownedOrNotFound(err, reminder.UserID, ownerID, ErrReminderNotFound); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (service *NotificationService) ListForReminder(ownerID uint, reminderID uint) ([]models.Notification, error) {
	if _, err := service.findReminder(ownerID, reminderID); err != nil {
		return nil, err
	}
	return service.notifications.ListByReminder(reminderID)
}

func (service *NotificationService) ListForUser(userID uint, statusRaw string) ([]models.Notification, error) {
	if err := requireUser(service.users, userID); err != nil {
		return nil, err
	}
	status := strings.ToLower(strings.TrimSpace(statusRaw))
	if status != "" && !isNotificationStatus(status) {
		return nil, ErrInvalidNotifyStatus
	}
	return service.notifications.ListByUser(userID, status)
}

// Create schedules a pending notification for the reminder. The message and
// scheduled time fall back to the reminder's title and datetime.
func (service *NotificationService) Create(ownerID uint, reminderID uint, input NotificationInput) (models.Notification, error) {
	reminder, err := service.findReminder(ownerID, reminderID)
	if err != nil {
		return models.Notification{}, err
	}

	notificationType := strings.ToLower(strings.TrimSpace(input.NotificationType))
	if !models.IsNotificationType(notificationType) {
		return models.Notification{}, ErrInvalidNotification
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		message = ReminderNotificationMessage(reminder)
	}

	scheduledTime := reminder.ReminderDatetime
	if strings.TrimSpace(input.ScheduledTime) != "" {
		scheduledTime, err = ParseInstant(input.ScheduledTime)
		if err != nil {
			return models.Notification{}, err
		}
	}

	notification := models.Notification{
		ReminderID:       reminder.ID,
		UserID:           reminder.UserID,
		NotificationType: notificationType,
		Message:          message,
		ScheduledTime:    scheduledTime,
		Status:           models.NotificationStatusPending,
		CreatedAt:        service.now(),
	}
	if err := service.notifications.Create(&notification); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (service *NotificationService) FindForOwner(ownerID uint, notificationID uint) (models.Notification, error) {
	notification, err := service.notifications.FindByID(notificationID)
	if err := ownedOrNotFound(err, notification.UserID, ownerID, ErrNotificationNotFound); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// UpdateStatus moves a pending notification to sent, failed or cancelled.
// Only the move to sent records sent_time.
func (service *NotificationService) UpdateStatus(ownerID uint, notificationID uint, statusRaw string) (models.Notification, error) {
	status := strings.ToLower(strings.TrimSpace(statusRaw))
	if !isNotificationStatus(status) {
		return models.Notification{}, ErrInvalidNotifyStatus
	}

	notification, err := service.FindForOwner(ownerID, notificationID)
	if err != nil {
		return models.Notification{}, err
	}
	if !models.CanTransitionNotification(notification.Status, status) {
		return models.Notification{}, ErrNotificationTransition
	}

	notification.Status = status
	if status == models.NotificationStatusSent {
		sentAt := service.now()
		notification.SentTime = &sentAt
	}
	if err := service.notifications.Save(&notification); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// MarkRead is idempotent: the first read_at is kept.
func (service *NotificationService) MarkRead(ownerID uint, notificationID uint) (models.Notification, error) {
	notification, err := service.FindForOwner(ownerID, notificationID)
	if err != nil {
		return models.Notification{}, err
	}
	if notification.IsRead {
		return notification, nil
	}

	readAt := service.now()
	notification.IsRead = true
	notification.ReadAt = &readAt
	if err := service.notifications.Save(&notification); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func ReminderNotificationMessage(reminder models.Reminder) string {
	return "Reminder: " + reminder.Title
}

func isNotificationStatus(value string) bool {
	switch value {
	case models.NotificationStatusPending,
		models.NotificationStatusSent,
		models.NotificationStatusFailed,
		models.NotificationStatusCancelled:
		return true
	default:
		return false
	}
}
