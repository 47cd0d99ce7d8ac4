package db

import (
	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return translateError("reminder", repo.database.Create(reminder).Error)
}

func (repo *ReminderRepository) FindByID(reminderID uint) (models.Reminder, error) {
	var reminder models.Reminder
	if err := repo.database.First(&reminder, reminderID).Error; err != nil {
		return models.Reminder{}, translateError("reminder", err)
	}
	return reminder, nil
}

func (repo *ReminderRepository) ListByUser(userID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("reminder_datetime ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, translateError("reminder", err)
	}
	return reminders, nil
}

func (repo *ReminderRepository) Save(reminder *models.Reminder) error {
	return translateError("reminder", repo.database.Save(reminder).Error)
}

// DeleteWithNotifications removes the reminder and its notifications in one
// transaction.
func (repo *ReminderRepository) DeleteWithNotifications(reminderID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reminder_id = ?", reminderID).Delete(&models.Notification{}).Error; err != nil {
			return translateError("notification", err)
		}

		result := tx.Delete(&models.Reminder{}, reminderID)
		if result.Error != nil {
			return translateError("reminder", result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound("reminder")
		}
		return nil
	})
}
