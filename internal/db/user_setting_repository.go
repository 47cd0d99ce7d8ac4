package db

import (
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSettingRepository struct {
	database *gorm.DB
}

func NewUserSettingRepository(database *gorm.DB) *UserSettingRepository {
	return &UserSettingRepository{database: database}
}

func (repo *UserSettingRepository) ListByUser(userID uint) ([]models.UserSetting, error) {
	settings := make([]models.UserSetting, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("setting_name ASC").
		Find(&settings).Error; err != nil {
		return nil, translateError("user setting", err)
	}
	return settings, nil
}

func (repo *UserSettingRepository) FindByUserAndName(userID uint, name string) (models.UserSetting, error) {
	var setting models.UserSetting
	if err := repo.database.
		Where("user_id = ? AND setting_name = ?", userID, name).
		First(&setting).Error; err != nil {
		return models.UserSetting{}, translateError("user setting", err)
	}
	return setting, nil
}

// Upsert writes value under (userID, name), updating the existing row in
// place when one exists, and returns the stored row.
func (repo *UserSettingRepository) Upsert(userID uint, name string, value string, now time.Time) (models.UserSetting, error) {
	var stored models.UserSetting
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		row := models.UserSetting{
			UserID:       userID,
			SettingName:  name,
			SettingValue: value,
			UpdatedAt:    now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "setting_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND setting_name = ?", userID, name).First(&stored).Error
	})
	if err != nil {
		return models.UserSetting{}, translateError("user setting", err)
	}
	return stored, nil
}

func (repo *UserSettingRepository) CreateBatch(settings []models.UserSetting) error {
	if len(settings) == 0 {
		return nil
	}
	return translateError("user setting", repo.database.Create(&settings).Error)
}
