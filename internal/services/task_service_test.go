package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
)

type stubTaskRepo struct {
	tasks  map[uint]models.Task
	nextID uint
}

func (stub *stubTaskRepo) Create(task *models.Task) error {
	if stub.tasks == nil {
		stub.tasks = make(map[uint]models.Task)
	}
	stub.nextID++
	task.ID = stub.nextID
	stub.tasks[task.ID] = *task
	return nil
}

func (stub *stubTaskRepo) FindByID(taskID uint) (models.Task, error) {
	task, ok := stub.tasks[taskID]
	if !ok {
		return models.Task{}, models.ErrNotFound
	}
	return task, nil
}

func (stub *stubTaskRepo) ListByUser(userID uint, status string) ([]models.Task, error) {
	result := make([]models.Task, 0)
	for _, task := range stub.tasks {
		if task.UserID == userID && (status == "" || task.Status == status) {
			result = append(result, task)
		}
	}
	return result, nil
}

func (stub *stubTaskRepo) Save(task *models.Task) error {
	stub.tasks[task.ID] = *task
	return nil
}

func (stub *stubTaskRepo) Delete(taskID uint) error {
	if _, ok := stub.tasks[taskID]; !ok {
		return models.ErrNotFound
	}
	delete(stub.tasks, taskID)
	return nil
}

func TestTaskCreateDefaults(t *testing.T) {
	service := NewTaskService(existingUsers(1), &stubTaskRepo{})

	task, err := service.Create(1, TaskInput{Title: "Buy milk", DueDate: "2026-02-01"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if task.Priority != models.PriorityMedium || task.Status != models.TaskStatusPending {
		t.Fatalf("unexpected defaults priority=%q status=%q", task.Priority, task.Status)
	}
	if !task.HasVoiceReminder {
		t.Fatal("expected voice reminder enabled by default")
	}
	if task.DueDate == nil || task.DueDate.Format("2006-01-02") != "2026-02-01" {
		t.Fatalf("unexpected due date %v", task.DueDate)
	}
	if task.CompletedAt != nil {
		t.Fatal("expected completed_at to be unset")
	}
}

func TestTaskStatusTransitionToCompletedStampsCompletedAt(t *testing.T) {
	now := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)
	service := NewTaskService(existingUsers(1), &stubTaskRepo{})
	service.now = func() time.Time { return now }

	task, err := service.Create(1, TaskInput{Title: "Laundry"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	inProgress := models.TaskStatusInProgress
	task, err = service.Update(1, task.ID, TaskPatch{Status: &inProgress})
	if err != nil {
		t.Fatalf("Update(in_progress) unexpected error: %v", err)
	}
	if task.CompletedAt != nil {
		t.Fatal("expected completed_at unset for in_progress")
	}

	completed := models.TaskStatusCompleted
	task, err = service.Update(1, task.ID, TaskPatch{Status: &completed})
	if err != nil {
		t.Fatalf("Update(completed) unexpected error: %v", err)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Fatalf("expected completed_at %v, got %v", now, task.CompletedAt)
	}

	service.now = func() time.Time { return now.Add(time.Hour) }
	task, err = service.Update(1, task.ID, TaskPatch{Status: &completed})
	if err != nil {
		t.Fatalf("Update(completed again) unexpected error: %v", err)
	}
	if !task.CompletedAt.Equal(now) {
		t.Fatalf("expected completed_at to stay %v on repeated completion, got %v", now, task.CompletedAt)
	}
}

func TestTaskValidation(t *testing.T) {
	service := NewTaskService(existingUsers(1), &stubTaskRepo{})

	if _, err := service.Create(1, TaskInput{Title: "x", Status: "done"}); !errors.Is(err, ErrInvalidTaskStatus) {
		t.Fatalf("expected ErrInvalidTaskStatus, got %v", err)
	}
	if _, err := service.Create(1, TaskInput{Title: "x", DueDate: "someday"}); !errors.Is(err, ErrInvalidDatetime) {
		t.Fatalf("expected ErrInvalidDatetime, got %v", err)
	}
	if _, err := service.Create(2, TaskInput{Title: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := service.ListForUser(1, "bogus"); !errors.Is(err, ErrInvalidTaskStatus) {
		t.Fatalf("expected ErrInvalidTaskStatus on list filter, got %v", err)
	}
}

func TestTaskDeleteRespectsOwnership(t *testing.T) {
	repo := &stubTaskRepo{}
	service := NewTaskService(existingUsers(1, 2), repo)
	task, err := service.Create(1, TaskInput{Title: "Mine"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := service.Delete(2, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := service.Delete(1, task.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Fatalf("expected task removed, got %d", len(repo.tasks))
	}
}
