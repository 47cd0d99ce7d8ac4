package db

import (
	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type MLModelRepository struct {
	database *gorm.DB
}

func NewMLModelRepository(database *gorm.DB) *MLModelRepository {
	return &MLModelRepository{database: database}
}

func (repo *MLModelRepository) Create(model *models.MLModel) error {
	return translateError("ml model", repo.database.Create(model).Error)
}

func (repo *MLModelRepository) FindByID(modelID uint) (models.MLModel, error) {
	var model models.MLModel
	if err := repo.database.First(&model, modelID).Error; err != nil {
		return models.MLModel{}, translateError("ml model", err)
	}
	return model, nil
}

func (repo *MLModelRepository) List(activeOnly bool) ([]models.MLModel, error) {
	query := repo.database.Model(&models.MLModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	catalog := make([]models.MLModel, 0)
	if err := query.Order("model_name ASC, id ASC").Find(&catalog).Error; err != nil {
		return nil, translateError("ml model", err)
	}
	return catalog, nil
}
