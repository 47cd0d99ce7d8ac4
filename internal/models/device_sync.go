package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SyncStatusActive   = "active"
	SyncStatusInactive = "inactive"
	SyncStatusError    = "error"
	SyncStatusPending  = "pending"
)

type DeviceSync struct {
	ID               uint              `gorm:"primaryKey" json:"sync_id"`
	UserID           uint              `gorm:"not null;index" json:"user_id"`
	DeviceIdentifier string            `gorm:"not null;index" json:"device_identifier"`
	LastSync         time.Time         `gorm:"not null" json:"last_sync"`
	SyncStatus       string            `gorm:"not null" json:"sync_status"`
	SyncData         datatypes.JSONMap `json:"sync_data"`
	DeviceName       string            `json:"device_name"`
	DeviceType       string            `json:"device_type"`
	Platform         string            `json:"platform"`
	AppVersion       string            `json:"app_version"`
	CreatedAt        time.Time         `json:"created_at"`
}

func (DeviceSync) TableName() string {
	return "device_sync"
}

func IsSyncStatus(value string) bool {
	switch value {
	case SyncStatusActive, SyncStatusInactive, SyncStatusError, SyncStatusPending:
		return true
	default:
		return false
	}
}
