package models

import "time"

const (
	NotificationTypeSMS   = "sms"
	NotificationTypeEmail = "email"
	NotificationTypeVoice = "voice"
	NotificationTypePush  = "push"
)

const (
	NotificationStatusPending   = "pending"
	NotificationStatusSent      = "sent"
	NotificationStatusFailed    = "failed"
	NotificationStatusCancelled = "cancelled"
)

type Notification struct {
	ID               uint       `gorm:"primaryKey" json:"notification_id"`
	ReminderID       uint       `gorm:"not null;index" json:"reminder_id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	NotificationType string     `gorm:"not null" json:"notification_type"`
	Message          string     `gorm:"not null" json:"message"`
	ScheduledTime    time.Time  `gorm:"not null" json:"scheduled_time"`
	SentTime         *time.Time `json:"sent_time"`
	Status           string     `gorm:"not null" json:"status"`
	IsRead           bool       `gorm:"not null" json:"is_read"`
	ReadAt           *time.Time `json:"read_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

func IsNotificationType(value string) bool {
	switch value {
	case NotificationTypeSMS, NotificationTypeEmail, NotificationTypeVoice, NotificationTypePush:
		return true
	default:
		return false
	}
}

// CanTransitionNotification reports whether a notification may move from
// one status to another. Only pending notifications change status.
func CanTransitionNotification(from string, to string) bool {
	if from != NotificationStatusPending {
		return false
	}
	switch to {
	case NotificationStatusSent, NotificationStatusFailed, NotificationStatusCancelled:
		return true
	default:
		return false
	}
}
