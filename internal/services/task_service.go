package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
)

type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(taskID uint) (models.Task, error)
	ListByUser(userID uint, status string) ([]models.Task, error)
	Save(task *models.Task) error
	Delete(taskID uint) error
}

type TaskInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Priority         string `json:"priority"`
	Status           string `json:"status"`
	Category         string `json:"category"`
	DueDate          string `json:"due_date"`
	HasVoiceReminder *bool  `json:"has_voice_reminder"`
	ReminderText     string `json:"reminder_text"`
}

type TaskPatch struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Priority         *string `json:"priority"`
	Status           *string `json:"status"`
	Category         *string `json:"category"`
	DueDate          *string `json:"due_date"`
	HasVoiceReminder *bool   `json:"has_voice_reminder"`
	ReminderText     *string `json:"reminder_text"`
}

type TaskService struct {
	users UserExistenceRepository
	tasks TaskRepository
	now   func() time.Time
}

func NewTaskService(users UserExistenceRepository, tasks TaskRepository) *TaskService {
	return &TaskService{users: users, tasks: tasks, now: utcNow}
}

func (service *TaskService) ListForUser(userID uint, statusRaw string) ([]models.Task, error) {
	if err := requireUser(service.users, userID); err != nil {
		return nil, err
	}
	status := strings.ToLower(strings.TrimSpace(statusRaw))
	if status != "" && !models.IsTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}
	return service.tasks.ListByUser(userID, status)
}

func (service *TaskService) Create(userID uint, input TaskInput) (models.Task, error) {
	if err := requireUser(service.users, userID); err != nil {
		return models.Task{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Task{}, ErrTitleRequired
	}
	priority, err := normalizePriority(input.Priority)
	if err != nil {
		return models.Task{}, err
	}
	status, err := normalizeTaskStatus(input.Status)
	if err != nil {
		return models.Task{}, err
	}
	dueDate, err := ParseDueDate(input.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	hasVoiceReminder := true
	if input.HasVoiceReminder != nil {
		hasVoiceReminder = *input.HasVoiceReminder
	}

	now := service.now()
	task := models.Task{
		UserID:           userID,
		Title:            title,
		Description:      strings.TrimSpace(input.Description),
		Priority:         priority,
		Status:           status,
		Category:         strings.TrimSpace(input.Category),
		DueDate:          dueDate,
		HasVoiceReminder: hasVoiceReminder,
		ReminderText:     strings.TrimSpace(input.ReminderText),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if status == models.TaskStatusCompleted {
		task.CompletedAt = &now
	}

	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) FindForOwner(ownerID uint, taskID uint) (models.Task, error) {
	task, err := service.tasks.FindByID(taskID)
	if err := ownedOrNotFound(err, task.UserID, ownerID, ErrTaskNotFound); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update applies the non-nil fields of patch. completed_at is stamped when
// the status moves into completed from any other status.
func (service *TaskService) Update(ownerID uint, taskID uint, patch TaskPatch) (models.Task, error) {
	task, err := service.FindForOwner(ownerID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.Task{}, ErrTitleRequired
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Priority != nil {
		priority, err := normalizePriority(*patch.Priority)
		if err != nil {
			return models.Task{}, err
		}
		task.Priority = priority
	}
	if patch.Category != nil {
		task.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.DueDate != nil {
		dueDate, err := ParseDueDate(*patch.DueDate)
		if err != nil {
			return models.Task{}, err
		}
		task.DueDate = dueDate
	}
	if patch.HasVoiceReminder != nil {
		task.HasVoiceReminder = *patch.HasVoiceReminder
	}
	if patch.ReminderText != nil {
		task.ReminderText = strings.TrimSpace(*patch.ReminderText)
	}

	now := service.now()
	if patch.Status != nil {
		status, err := normalizeTaskStatus(*patch.Status)
		if err != nil {
			return models.Task{}, err
		}
		if status == models.TaskStatusCompleted && task.Status != models.TaskStatusCompleted {
			completedAt := now
			task.CompletedAt = &completedAt
		}
		task.Status = status
	}
	task.UpdatedAt = now

	if err := service.tasks.Save(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) Delete(ownerID uint, taskID uint) error {
	if _, err := service.FindForOwner(ownerID, taskID); err != nil {
		return err
	}
	return service.tasks.Delete(taskID)
}

func normalizeTaskStatus(raw string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(raw))
	if status == "" {
		return models.TaskStatusPending, nil
	}
	if !models.IsTaskStatus(status) {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}
