package models

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

type Task struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	Title            string     `gorm:"not null" json:"title"`
	Description      string     `json:"description"`
	Priority         string     `gorm:"not null" json:"priority"`
	Status           string     `gorm:"not null" json:"status"`
	Category         string     `json:"category"`
	DueDate          *time.Time `json:"due_date"`
	HasVoiceReminder bool       `gorm:"not null" json:"has_voice_reminder"`
	ReminderText     string     `json:"reminder_text"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

func IsTaskStatus(value string) bool {
	switch value {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	default:
		return false
	}
}
