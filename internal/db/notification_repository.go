package db

import (
	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return translateError("notification", repo.database.Create(notification).Error)
}

func (repo *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return translateError("notification", repo.database.Create(&notifications).Error)
}

func (repo *NotificationRepository) FindByID(notificationID uint) (models.Notification, error) {
	var notification models.Notification
	if err := repo.database.First(&notification, notificationID).Error; err != nil {
		return models.Notification{}, translateError("notification", err)
	}
	return notification, nil
}

func (repo *NotificationRepository) ListByReminder(reminderID uint) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("reminder_id = ?", reminderID).
		Order("scheduled_time ASC, id ASC").
		Find(&notifications).Error; err != nil {
		return nil, translateError("notification", err)
	}
	return notifications, nil
}

func (repo *NotificationRepository) ListByUser(userID uint, status string) ([]models.Notification, error) {
	query := repo.database.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	notifications := make([]models.Notification, 0)
	if err := query.Order("scheduled_time ASC, id ASC").Find(&notifications).Error; err != nil {
		return nil, translateError("notification", err)
	}
	return notifications, nil
}

func (repo *NotificationRepository) Save(notification *models.Notification) error {
	return translateError("notification", repo.database.Save(notification).Error)
}
