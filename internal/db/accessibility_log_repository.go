package db

import (
	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type AccessibilityLogRepository struct {
	database *gorm.DB
}

func NewAccessibilityLogRepository(database *gorm.DB) *AccessibilityLogRepository {
	return &AccessibilityLogRepository{database: database}
}

func (repo *AccessibilityLogRepository) Create(entry *models.AccessibilityLog) error {
	return translateError("accessibility log", repo.database.Create(entry).Error)
}

func (repo *AccessibilityLogRepository) CreateBatch(entries []models.AccessibilityLog) error {
	if len(entries) == 0 {
		return nil
	}
	return translateError("accessibility log", repo.database.Create(&entries).Error)
}

func (repo *AccessibilityLogRepository) ListRecentByUser(userID uint, limit int) ([]models.AccessibilityLog, error) {
	entries := make([]models.AccessibilityLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("logged_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, translateError("accessibility log", err)
	}
	return entries, nil
}
