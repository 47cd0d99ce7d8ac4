package db

import (
	"context"

	"gorm.io/gorm"
)

type Repositories struct {
	database *gorm.DB

	Users             *UserRepository
	Tasks             *TaskRepository
	Reminders         *ReminderRepository
	Notifications     *NotificationRepository
	TTSHistory        *TTSHistoryRepository
	Settings          *UserSettingRepository
	Devices           *DeviceSyncRepository
	AccessibilityLogs *AccessibilityLogRepository
	MLModels          *MLModelRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		database:          database,
		Users:             NewUserRepository(database),
		Tasks:             NewTaskRepository(database),
		Reminders:         NewReminderRepository(database),
		Notifications:     NewNotificationRepository(database),
		TTSHistory:        NewTTSHistoryRepository(database),
		Settings:          NewUserSettingRepository(database),
		Devices:           NewDeviceSyncRepository(database),
		AccessibilityLogs: NewAccessibilityLogRepository(database),
		MLModels:          NewMLModelRepository(database),
	}
}

// WithContext returns repositories bound to ctx. Handlers call it once per
// request so that every query of that request shares the request lifetime.
func (repos *Repositories) WithContext(ctx context.Context) *Repositories {
	return NewRepositories(repos.database.WithContext(ctx))
}

// Transaction runs fn against repositories bound to a single transaction.
// Any error returned by fn rolls the whole unit back.
func (repos *Repositories) Transaction(fn func(tx *Repositories) error) error {
	return repos.database.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

func (repos *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := repos.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
