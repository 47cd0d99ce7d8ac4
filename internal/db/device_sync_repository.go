package db

import (
	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type DeviceSyncRepository struct {
	database *gorm.DB
}

func NewDeviceSyncRepository(database *gorm.DB) *DeviceSyncRepository {
	return &DeviceSyncRepository{database: database}
}

func (repo *DeviceSyncRepository) ListByUser(userID uint) ([]models.DeviceSync, error) {
	devices := make([]models.DeviceSync, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("last_sync DESC, id DESC").
		Find(&devices).Error; err != nil {
		return nil, translateError("device sync", err)
	}
	return devices, nil
}

// FindByUserAndIdentifier returns the most recent record for the device. The
// pair is not unique in storage, so older duplicates are ignored.
func (repo *DeviceSyncRepository) FindByUserAndIdentifier(userID uint, identifier string) (models.DeviceSync, bool, error) {
	device := models.DeviceSync{}
	result := repo.database.
		Where("user_id = ? AND device_identifier = ?", userID, identifier).
		Order("id DESC").
		Limit(1).
		Find(&device)
	if result.Error != nil {
		return models.DeviceSync{}, false, translateError("device sync", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.DeviceSync{}, false, nil
	}
	return device, true, nil
}

func (repo *DeviceSyncRepository) Create(device *models.DeviceSync) error {
	return translateError("device sync", repo.database.Create(device).Error)
}

func (repo *DeviceSyncRepository) Save(device *models.DeviceSync) error {
	return translateError("device sync", repo.database.Save(device).Error)
}
