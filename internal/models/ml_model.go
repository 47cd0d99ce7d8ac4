package models

import (
	"time"

	"gorm.io/datatypes"
)

type MLModel struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	ModelName     string            `gorm:"not null" json:"model_name"`
	ModelType     string            `gorm:"not null" json:"model_type"`
	Version       string            `gorm:"not null" json:"version"`
	IsActive      bool              `gorm:"not null" json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
	LastTrained   *time.Time        `json:"last_trained"`
	AccuracyScore *float64          `json:"accuracy_score"`
	ModelData     datatypes.JSONMap `json:"model_data"`
}

func (MLModel) TableName() string {
	return "ml_models"
}
