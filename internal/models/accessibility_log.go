package models

import (
	"time"

	"gorm.io/datatypes"
)

type AccessibilityLog struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;index" json:"user_id"`
	FeatureUsed string            `gorm:"not null" json:"feature_used"`
	Action      string            `gorm:"not null" json:"action"`
	Timestamp   time.Time         `gorm:"column:logged_at;not null" json:"timestamp"`
	SessionID   string            `json:"session_id"`
	ContextData datatypes.JSONMap `json:"context_data"`
}
