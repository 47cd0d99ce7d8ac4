package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/datatypes"
)

type DeviceSyncRepository interface {
	ListByUser(userID uint) ([]models.DeviceSync, error)
	FindByUserAndIdentifier(userID uint, identifier string) (models.DeviceSync, bool, error)
	Create(device *models.DeviceSync) error
	Save(device *models.DeviceSync) error
}

type DeviceSyncInput struct {
	DeviceIdentifier string         `json:"device_identifier"`
	SyncStatus       string         `json:"sync_status"`
	SyncData         map[string]any `json:"sync_data"`
	DeviceName       string         `json:"device_name"`
	DeviceType       string         `json:"device_type"`
	Platform         string         `json:"platform"`
	AppVersion       string         `json:"app_version"`
}

type DeviceSyncService struct {
	users   UserExistenceRepository
	devices DeviceSyncRepository
	now     func() time.Time
}

func NewDeviceSyncService(users UserExistenceRepository, devices DeviceSyncRepository) *DeviceSyncService {
	return &DeviceSyncService{users: users, devices: devices, now: utcNow}
}

func (service *DeviceSyncService) ListForUser(userID uint) ([]models.DeviceSync, error) {
	if err := requireUser(service.users, userID); err != nil {
		return nil, err
	}
	return service.devices.ListByUser(userID)
}

// Sync records a check-in from a device. An existing record for the same
// identifier is refreshed in place; blank metadata keeps the stored values.
// The returned flag reports whether a new record was created.
func (service *DeviceSyncService) Sync(userID uint, input DeviceSyncInput) (models.DeviceSync, bool, error) {
	if err := requireUser(service.users, userID); err != nil {
		return models.DeviceSync{}, false, err
	}

	identifier := strings.TrimSpace(input.DeviceIdentifier)
	if identifier == "" {
		return models.DeviceSync{}, false, ErrDeviceIDRequired
	}
	status := strings.ToLower(strings.TrimSpace(input.SyncStatus))
	if status == "" {
		status = models.SyncStatusActive
	}
	if !models.IsSyncStatus(status) {
		return models.DeviceSync{}, false, ErrInvalidSyncStatus
	}

	device, found, err := service.devices.FindByUserAndIdentifier(userID, identifier)
	if err != nil {
		return models.DeviceSync{}, false, err
	}

	now := service.now()
	if !found {
		device = models.DeviceSync{
			UserID:           userID,
			DeviceIdentifier: identifier,
			SyncData:         datatypes.JSONMap{},
			CreatedAt:        now,
		}
	}
	device.LastSync = now
	device.SyncStatus = status
	if input.SyncData != nil {
		device.SyncData = datatypes.JSONMap(input.SyncData)
	}
	assignIfSet(&device.DeviceName, input.DeviceName)
	assignIfSet(&device.DeviceType, input.DeviceType)
	assignIfSet(&device.Platform, input.Platform)
	assignIfSet(&device.AppVersion, input.AppVersion)

	if !found {
		if err := service.devices.Create(&device); err != nil {
			return models.DeviceSync{}, false, err
		}
		return device, true, nil
	}
	if err := service.devices.Save(&device); err != nil {
		return models.DeviceSync{}, false, err
	}
	return device, false, nil
}

func assignIfSet(target *string, raw string) {
	if value := strings.TrimSpace(raw); value != "" {
		*target = value
	}
}
