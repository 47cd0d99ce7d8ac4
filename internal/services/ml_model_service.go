package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/datatypes"
)

type MLModelRepository interface {
	Create(model *models.MLModel) error
	FindByID(modelID uint) (models.MLModel, error)
	List(activeOnly bool) ([]models.MLModel, error)
}

type MLModelInput struct {
	ModelName     string         `json:"model_name"`
	ModelType     string         `json:"model_type"`
	Version       string         `json:"version"`
	IsActive      *bool          `json:"is_active"`
	LastTrained   string         `json:"last_trained"`
	AccuracyScore *float64       `json:"accuracy_score"`
	ModelData     map[string]any `json:"model_data"`
}

// MLModelService maintains the global model catalog. No other component
// reads it.
type MLModelService struct {
	catalog MLModelRepository
	now     func() time.Time
}

func NewMLModelService(catalog MLModelRepository) *MLModelService {
	return &MLModelService{catalog: catalog, now: utcNow}
}

func (service *MLModelService) List(activeOnly bool) ([]models.MLModel, error) {
	return service.catalog.List(activeOnly)
}

func (service *MLModelService) Get(modelID uint) (models.MLModel, error) {
	model, err := service.catalog.FindByID(modelID)
	if errors.Is(err, models.ErrNotFound) {
		return models.MLModel{}, ErrMLModelNotFound
	}
	return model, err
}

func (service *MLModelService) Register(input MLModelInput) (models.MLModel, error) {
	name := strings.TrimSpace(input.ModelName)
	modelType := strings.TrimSpace(input.ModelType)
	version := strings.TrimSpace(input.Version)
	if name == "" || modelType == "" || version == "" {
		return models.MLModel{}, ErrModelFieldsRequired
	}
	if input.AccuracyScore != nil && (*input.AccuracyScore < 0 || *input.AccuracyScore > 1) {
		return models.MLModel{}, ErrInvalidAccuracyScore
	}

	var lastTrained *time.Time
	if strings.TrimSpace(input.LastTrained) != "" {
		trainedAt, err := ParseInstant(input.LastTrained)
		if err != nil {
			return models.MLModel{}, err
		}
		lastTrained = &trainedAt
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	modelData := datatypes.JSONMap(input.ModelData)
	if modelData == nil {
		modelData = datatypes.JSONMap{}
	}

	model := models.MLModel{
		ModelName:     name,
		ModelType:     modelType,
		Version:       version,
		IsActive:      isActive,
		CreatedAt:     service.now(),
		LastTrained:   lastTrained,
		AccuracyScore: input.AccuracyScore,
		ModelData:     modelData,
	}
	if err := service.catalog.Create(&model); err != nil {
		return models.MLModel{}, err
	}
	return model, nil
}
