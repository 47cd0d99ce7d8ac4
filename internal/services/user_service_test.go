package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/accessaid/internal/models"
)

type stubUserRepo struct {
	users   map[uint]models.User
	updates []map[string]any
	deleted []uint
}

func (stub *stubUserRepo) List() ([]models.User, error) {
	result := make([]models.User, 0, len(stub.users))
	for _, user := range stub.users {
		result = append(result, user)
	}
	return result, nil
}

func (stub *stubUserRepo) FindByID(userID uint) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return user, nil
}

func (stub *stubUserRepo) UpdateByID(userID uint, updates map[string]any) error {
	user, ok := stub.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	stub.updates = append(stub.updates, updates)
	if value, ok := updates["first_name"].(string); ok {
		user.FirstName = value
	}
	if value, ok := updates["last_name"].(string); ok {
		user.LastName = value
	}
	if value, ok := updates["timezone"].(string); ok {
		user.Timezone = value
	}
	if value, ok := updates["is_active"].(bool); ok {
		user.IsActive = value
	}
	stub.users[userID] = user
	return nil
}

func (stub *stubUserRepo) DeleteAccountAndRelatedData(userID uint) error {
	if _, ok := stub.users[userID]; !ok {
		return models.ErrNotFound
	}
	delete(stub.users, userID)
	stub.deleted = append(stub.deleted, userID)
	return nil
}

func TestUserServiceUpdateProfile(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]models.User{
		1: {ID: 1, FirstName: "John", LastName: "Smith", Timezone: "UTC", IsActive: true},
	}}
	service := NewUserService(repo)

	lastName := "  Doe "
	inactive := false
	user, err := service.UpdateProfile(1, UserProfilePatch{LastName: &lastName, IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if user.FirstName != "John" || user.LastName != "Doe" || user.IsActive {
		t.Fatalf("unexpected user after patch: %#v", user)
	}

	blank := " "
	if _, err := service.UpdateProfile(1, UserProfilePatch{FirstName: &blank}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("expected rejected patch to skip the store, got %d updates", len(repo.updates))
	}

	if _, err := service.UpdateProfile(5, UserProfilePatch{LastName: &lastName}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserServiceDelete(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]models.User{1: {ID: 1}}}
	service := NewUserService(repo)

	if err := service.Delete(1); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := service.Delete(1); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
	if _, err := service.Get(1); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
