package models

const (
	ReminderFrequencyLow    = "low"
	ReminderFrequencyNormal = "normal"
	ReminderFrequencyHigh   = "high"
)

// AccessibilityPreferences is the fixed-shape preference document stored on
// the user row. It is replaced as a whole and never merged with UserSetting
// rows.
type AccessibilityPreferences struct {
	VoiceSpeed        float64 `json:"voice_speed"`
	HighContrast      bool    `json:"high_contrast"`
	LargeText         bool    `json:"large_text"`
	VoiceNavigation   bool    `json:"voice_navigation"`
	ReminderFrequency string  `json:"reminder_frequency"`
	PreferredVoice    string  `json:"preferred_voice"`
}

func DefaultAccessibilityPreferences() AccessibilityPreferences {
	return AccessibilityPreferences{
		VoiceSpeed:        1.0,
		HighContrast:      false,
		LargeText:         false,
		VoiceNavigation:   true,
		ReminderFrequency: ReminderFrequencyNormal,
		PreferredVoice:    "default",
	}
}
