package db

import (
	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type TTSHistoryRepository struct {
	database *gorm.DB
}

func NewTTSHistoryRepository(database *gorm.DB) *TTSHistoryRepository {
	return &TTSHistoryRepository{database: database}
}

func (repo *TTSHistoryRepository) Create(entry *models.TTSHistory) error {
	return translateError("tts history", repo.database.Create(entry).Error)
}

func (repo *TTSHistoryRepository) CreateBatch(entries []models.TTSHistory) error {
	if len(entries) == 0 {
		return nil
	}
	return translateError("tts history", repo.database.Create(&entries).Error)
}

// ListRecentByUser returns at most limit entries, newest first.
func (repo *TTSHistoryRepository) ListRecentByUser(userID uint, limit int) ([]models.TTSHistory, error) {
	entries := make([]models.TTSHistory, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("spoken_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, translateError("tts history", err)
	}
	return entries, nil
}
