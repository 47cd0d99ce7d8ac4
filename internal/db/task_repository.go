package db

import (
	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return translateError("task", repo.database.Create(task).Error)
}

func (repo *TaskRepository) CreateBatch(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return translateError("task", repo.database.Create(&tasks).Error)
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, error) {
	var task models.Task
	if err := repo.database.First(&task, taskID).Error; err != nil {
		return models.Task{}, translateError("task", err)
	}
	return task, nil
}

func (repo *TaskRepository) ListByUser(userID uint, status string) ([]models.Task, error) {
	query := repo.database.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	tasks := make([]models.Task, 0)
	if err := query.Order("due_date IS NULL, due_date ASC, id ASC").Find(&tasks).Error; err != nil {
		return nil, translateError("task", err)
	}
	return tasks, nil
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return translateError("task", repo.database.Save(task).Error)
}

func (repo *TaskRepository) Delete(taskID uint) error {
	result := repo.database.Delete(&models.Task{}, taskID)
	if result.Error != nil {
		return translateError("task", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("task")
	}
	return nil
}
