package models

import "time"

const (
	FrequencyOnce    = "once"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyCustom  = "custom"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Reminder struct {
	ID               uint       `gorm:"primaryKey" json:"reminder_id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	Title            string     `gorm:"not null" json:"title"`
	Description      string     `json:"description"`
	ReminderDatetime time.Time  `gorm:"not null" json:"reminder_datetime"`
	Frequency        string     `gorm:"not null" json:"frequency"`
	Priority         string     `gorm:"not null" json:"priority"`
	IsActive         bool       `gorm:"not null" json:"is_active"`
	IsCompleted      bool       `gorm:"not null" json:"is_completed"`
	CompletedAt      *time.Time `json:"completed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsUrgent reports whether the reminder warrants an early push notification.
func (reminder Reminder) IsUrgent() bool {
	return reminder.Priority == PriorityHigh || reminder.Priority == PriorityUrgent
}

func IsFrequency(value string) bool {
	switch value {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	default:
		return false
	}
}

func IsPriority(value string) bool {
	switch value {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
