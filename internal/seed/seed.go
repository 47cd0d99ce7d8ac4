package seed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/accessaid/internal/db"
	"github.com/terraincognita07/accessaid/internal/models"
	"github.com/terraincognita07/accessaid/internal/services"
	"gorm.io/datatypes"
)

// Summary counts the rows one Run inserted.
type Summary struct {
	Skipped           bool `json:"skipped"`
	Users             int  `json:"users"`
	Tasks             int  `json:"tasks"`
	Reminders         int  `json:"reminders"`
	Notifications     int  `json:"notifications"`
	Settings          int  `json:"settings"`
	TTSHistory        int  `json:"tts_history"`
	Devices           int  `json:"devices"`
	AccessibilityLogs int  `json:"accessibility_logs"`
}

type Seeder struct {
	repos  *db.Repositories
	logger zerolog.Logger
	now    func() time.Time
}

func NewSeeder(repos *db.Repositories, logger zerolog.Logger) *Seeder {
	return &Seeder{
		repos:  repos,
		logger: logger.With().Str("component", "seed").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Run inserts the demo dataset. It is idempotent: when the first demo user
// already exists nothing is written. Failures after the users are in place
// are logged and the remaining sections still run.
func (seeder *Seeder) Run(ctx context.Context) (Summary, error) {
	repos := seeder.repos.WithContext(ctx)
	summary := Summary{}

	exists, err := repos.Users.ExistsByNormalizedEmail(userFixtures[0].email)
	if err != nil {
		return summary, fmt.Errorf("check existing seed data: %w", err)
	}
	if exists {
		seeder.logger.Info().Msg("seed data already present, skipping")
		summary.Skipped = true
		return summary, nil
	}

	now := seeder.now().UTC()
	users, err := seeder.seedUsers(repos, now)
	if err != nil {
		return summary, err
	}
	summary.Users = len(users)

	seededReminders := 0
	for index, user := range users {
		fixture := userFixtures[index]
		log := seeder.logger.With().Uint("user_id", user.ID).Str("email", user.Email).Logger()

		tasks := buildTasks(user, fixture, now)
		if err := repos.Tasks.CreateBatch(tasks); err != nil {
			log.Error().Err(err).Msg("seed tasks failed")
		} else {
			summary.Tasks += len(tasks)
		}

		reminders, err := seedReminders(repos, user, fixture, now)
		summary.Reminders += len(reminders)
		if err != nil {
			log.Error().Err(err).Msg("seed reminders failed")
		}

		notifications := buildNotifications(reminders, seededReminders, now)
		seededReminders += len(reminders)
		if err := repos.Notifications.CreateBatch(notifications); err != nil {
			log.Error().Err(err).Msg("seed notifications failed")
		} else {
			summary.Notifications += len(notifications)
		}

		settings := buildSettings(user, fixture, index, now)
		if err := repos.Settings.CreateBatch(settings); err != nil {
			log.Error().Err(err).Msg("seed settings failed")
		} else {
			summary.Settings += len(settings)
		}

		entries := buildTTSHistory(user, fixture, now)
		if err := repos.TTSHistory.CreateBatch(entries); err != nil {
			log.Error().Err(err).Msg("seed tts history failed")
		} else {
			summary.TTSHistory += len(entries)
		}

		device := buildDevice(user, fixture, now)
		if err := repos.Devices.Create(&device); err != nil {
			log.Error().Err(err).Msg("seed device failed")
		} else {
			summary.Devices++
		}

		logs := buildAccessibilityLogs(user, now)
		if err := repos.AccessibilityLogs.CreateBatch(logs); err != nil {
			log.Error().Err(err).Msg("seed accessibility logs failed")
		} else {
			summary.AccessibilityLogs += len(logs)
		}
	}

	seeder.logger.Info().
		Int("users", summary.Users).
		Int("tasks", summary.Tasks).
		Int("reminders", summary.Reminders).
		Int("notifications", summary.Notifications).
		Int("settings", summary.Settings).
		Int("tts_history", summary.TTSHistory).
		Int("devices", summary.Devices).
		Int("accessibility_logs", summary.AccessibilityLogs).
		Msg("seed data created")
	return summary, nil
}

func (seeder *Seeder) seedUsers(repos *db.Repositories, now time.Time) ([]models.User, error) {
	pinHash, err := services.HashPIN(DefaultPIN)
	if err != nil {
		return nil, fmt.Errorf("hash seed pin: %w", err)
	}

	users := make([]models.User, 0, len(userFixtures))
	err = repos.Transaction(func(tx *db.Repositories) error {
		for _, fixture := range userFixtures {
			user := models.User{
				Email:                    fixture.email,
				PINHash:                  pinHash,
				FirstName:                fixture.firstName,
				LastName:                 fixture.lastName,
				AccessibilityPreferences: fixture.preferences,
				Timezone:                 fixture.timezone,
				IsActive:                 true,
				CreatedAt:                now,
				UpdatedAt:                now,
			}
			if err := tx.Users.Create(&user); err != nil {
				return fmt.Errorf("create seed user %s: %w", fixture.email, err)
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func buildTasks(user models.User, fixture userFixture, now time.Time) []models.Task {
	tasks := make([]models.Task, 0, len(fixture.tasks))
	for _, item := range fixture.tasks {
		dueDate := now.Add(item.dueIn)
		tasks = append(tasks, models.Task{
			UserID:           user.ID,
			Title:            item.title,
			Description:      item.description,
			Priority:         item.priority,
			Status:           models.TaskStatusPending,
			Category:         item.category,
			DueDate:          &dueDate,
			HasVoiceReminder: true,
			ReminderText:     item.reminderText,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}
	return tasks
}

func seedReminders(repos *db.Repositories, user models.User, fixture userFixture, now time.Time) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0, len(fixture.reminders))
	var errs []error
	for _, item := range fixture.reminders {
		reminder := models.Reminder{
			UserID:           user.ID,
			Title:            item.title,
			Description:      item.description,
			ReminderDatetime: now.Add(item.in),
			Frequency:        item.frequency,
			Priority:         item.priority,
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := repos.Reminders.Create(&reminder); err != nil {
			errs = append(errs, fmt.Errorf("create reminder %q: %w", item.title, err))
			continue
		}
		reminders = append(reminders, reminder)
	}
	return reminders, errors.Join(errs...)
}

// buildNotifications gives every reminder a voice notification and the
// high-priority ones an extra push five minutes ahead. offset is the number of
// reminders already seeded for earlier users; the first reminders of the whole
// run are marked sent (and the very first one read).
func buildNotifications(reminders []models.Reminder, offset int, now time.Time) []models.Notification {
	notifications := make([]models.Notification, 0, len(reminders)*2)
	for index, reminder := range reminders {
		position := offset + index
		message := reminder.Description
		if message == "" {
			message = reminder.Title
		}
		voice := models.Notification{
			ReminderID:       reminder.ID,
			UserID:           reminder.UserID,
			NotificationType: models.NotificationTypeVoice,
			Message:          message,
			ScheduledTime:    reminder.ReminderDatetime,
			Status:           models.NotificationStatusPending,
			CreatedAt:        now,
		}
		if position < 2 {
			sentAt := now
			voice.Status = models.NotificationStatusSent
			voice.SentTime = &sentAt
		}
		if position < 1 {
			readAt := now
			voice.IsRead = true
			voice.ReadAt = &readAt
		}
		notifications = append(notifications, voice)

		if !reminder.IsUrgent() {
			continue
		}
		push := models.Notification{
			ReminderID:       reminder.ID,
			UserID:           reminder.UserID,
			NotificationType: models.NotificationTypePush,
			Message:          services.ReminderNotificationMessage(reminder),
			ScheduledTime:    reminder.ReminderDatetime.Add(-5 * time.Minute),
			Status:           models.NotificationStatusPending,
			CreatedAt:        now,
		}
		if position < 3 {
			sentAt := now
			push.Status = models.NotificationStatusSent
			push.SentTime = &sentAt
		}
		notifications = append(notifications, push)
	}
	return notifications
}

func buildSettings(user models.User, fixture userFixture, index int, now time.Time) []models.UserSetting {
	highContrast := index%2 == 0
	values := []struct {
		name  string
		value string
	}{
		{"voice_name", fixture.voiceName},
		{"speech_rate", strconv.FormatFloat(fixture.speechRate, 'g', -1, 64)},
		{"theme", "auto"},
		{"font_size", fixture.fontSize},
		{"high_contrast", strconv.FormatBool(highContrast)},
		{"push_notifications", "true"},
		{"email_notifications", "true"},
		{"reminder_sound", "true"},
	}

	settings := make([]models.UserSetting, 0, len(values))
	for _, item := range values {
		settings = append(settings, models.UserSetting{
			UserID:       user.ID,
			SettingName:  item.name,
			SettingValue: item.value,
			UpdatedAt:    now,
		})
	}
	return settings
}

func buildTTSHistory(user models.User, fixture userFixture, now time.Time) []models.TTSHistory {
	entries := make([]models.TTSHistory, 0, len(ttsFixtures))
	for index, item := range ttsFixtures {
		duration := item.duration
		entries = append(entries, models.TTSHistory{
			UserID:  user.ID,
			Content: item.content,
			VoiceSettings: datatypes.JSONMap{
				"voice_name": fixture.voiceName,
				"language":   "en-US",
			},
			SpeechRate:      fixture.speechRate,
			Volume:          1.0,
			DurationSeconds: &duration,
			Timestamp:       now.Add(-time.Duration(len(ttsFixtures)-index) * time.Hour),
			Context:         item.context,
		})
	}
	return entries
}

func buildDevice(user models.User, fixture userFixture, now time.Time) models.DeviceSync {
	return models.DeviceSync{
		UserID:           user.ID,
		DeviceIdentifier: fmt.Sprintf("device_%d_001", user.ID),
		LastSync:         now,
		SyncStatus:       models.SyncStatusActive,
		SyncData: datatypes.JSONMap{
			"last_backup":        now.Format(time.RFC3339),
			"sync_count":         15,
			"preferences_synced": true,
		},
		DeviceName: fixture.firstName + "'s " + fixture.device.nameSuffix,
		DeviceType: fixture.device.deviceType,
		Platform:   fixture.device.platform,
		AppVersion: "1.0.0",
		CreatedAt:  now,
	}
}

func buildAccessibilityLogs(user models.User, now time.Time) []models.AccessibilityLog {
	logs := make([]models.AccessibilityLog, 0, len(accessibilityLogFixtures))
	for index, item := range accessibilityLogFixtures {
		logs = append(logs, models.AccessibilityLog{
			UserID:      user.ID,
			FeatureUsed: item.feature,
			Action:      item.action,
			Timestamp:   now.Add(-time.Duration(len(accessibilityLogFixtures)-index) * 10 * time.Minute),
			SessionID:   item.sessionID,
			ContextData: datatypes.JSONMap(item.context),
		})
	}
	return logs
}
