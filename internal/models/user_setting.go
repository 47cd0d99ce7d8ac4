package models

import "time"

type UserSetting struct {
	ID           uint      `gorm:"primaryKey" json:"setting_id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_user_setting_name" json:"user_id"`
	SettingName  string    `gorm:"not null;uniqueIndex:uidx_user_setting_name" json:"setting_name"`
	SettingValue string    `gorm:"not null" json:"setting_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SettingsMap flattens setting rows into the name → value view exposed to
// clients.
func SettingsMap(settings []UserSetting) map[string]string {
	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.SettingName] = setting.SettingValue
	}
	return values
}
