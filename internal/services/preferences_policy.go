package services

import (
	"strings"

	"github.com/terraincognita07/accessaid/internal/models"
)

const maxVoiceSpeed = 4.0

func NormalizeAccessibilityPreferences(preferences models.AccessibilityPreferences) (models.AccessibilityPreferences, error) {
	if preferences.VoiceSpeed <= 0 || preferences.VoiceSpeed > maxVoiceSpeed {
		return models.AccessibilityPreferences{}, ErrInvalidPreferences
	}

	preferences.ReminderFrequency = strings.ToLower(strings.TrimSpace(preferences.ReminderFrequency))
	switch preferences.ReminderFrequency {
	case "":
		preferences.ReminderFrequency = models.ReminderFrequencyNormal
	case models.ReminderFrequencyLow, models.ReminderFrequencyNormal, models.ReminderFrequencyHigh:
	default:
		return models.AccessibilityPreferences{}, ErrInvalidPreferences
	}

	preferences.PreferredVoice = strings.TrimSpace(preferences.PreferredVoice)
	if preferences.PreferredVoice == "" {
		preferences.PreferredVoice = models.DefaultAccessibilityPreferences().PreferredVoice
	}
	return preferences, nil
}
