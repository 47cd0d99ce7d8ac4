package models

// All lists every persisted model, parents before children.
func All() []any {
	return []any{
		&User{},
		&Task{},
		&Reminder{},
		&Notification{},
		&TTSHistory{},
		&UserSetting{},
		&DeviceSync{},
		&AccessibilityLog{},
		&MLModel{},
	}
}
