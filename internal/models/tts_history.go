package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultTTSContext = "app_usage"

type TTSHistory struct {
	ID              uint              `gorm:"primaryKey" json:"tts_id"`
	UserID          uint              `gorm:"not null;index" json:"user_id"`
	Content         string            `gorm:"not null" json:"content"`
	VoiceSettings   datatypes.JSONMap `json:"voice_settings"`
	SpeechRate      float64           `gorm:"not null" json:"speech_rate"`
	Volume          float64           `gorm:"not null" json:"volume"`
	DurationSeconds *float64          `json:"duration_seconds"`
	Timestamp       time.Time         `gorm:"column:spoken_at;not null" json:"timestamp"`
	Context         string            `json:"context"`
}

func (TTSHistory) TableName() string {
	return "tts_history"
}
