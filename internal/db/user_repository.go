package db

import (
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, translateError("user", err)
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, translateError("user", err)
	}
	return user, nil
}

func (repo *UserRepository) Exists(userID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).Where("id = ?", userID).Count(&matched).Error; err != nil {
		return false, translateError("user", err)
	}
	return matched > 0, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, translateError("user", err)
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, translateError("user", err)
	}
	return matched > 0, nil
}

func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("id ASC").Find(&users).Error; err != nil {
		return nil, translateError("user", err)
	}
	return users, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return translateError("user", repo.database.Create(user).Error)
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	updates["updated_at"] = time.Now().UTC()
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return translateError("user", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("user")
	}
	return nil
}

func (repo *UserRepository) UpdatePINHash(userID uint, pinHash string) error {
	return repo.UpdateByID(userID, map[string]any{"pin_hash": pinHash})
}

func (repo *UserRepository) UpdatePreferences(userID uint, preferences models.AccessibilityPreferences) error {
	patch := models.User{
		AccessibilityPreferences: preferences,
		UpdatedAt:                time.Now().UTC(),
	}
	result := repo.database.Model(&models.User{ID: userID}).
		Select("accessibility_preferences", "updated_at").
		Updates(&patch)
	if result.Error != nil {
		return translateError("user", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("user")
	}
	return nil
}

// DeleteAccountAndRelatedData removes the user and every row the user owns.
// Children are deleted explicitly so the cascade does not depend on the
// backend enforcing foreign keys.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		ownedReminders := tx.Model(&models.Reminder{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("user_id = ? OR reminder_id IN (?)", userID, ownedReminders).
			Delete(&models.Notification{}).Error; err != nil {
			return translateError("notification", err)
		}

		owned := []struct {
			entity string
			model  any
		}{
			{"reminder", &models.Reminder{}},
			{"task", &models.Task{}},
			{"tts history", &models.TTSHistory{}},
			{"user setting", &models.UserSetting{}},
			{"device sync", &models.DeviceSync{}},
			{"accessibility log", &models.AccessibilityLog{}},
		}
		for _, child := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(child.model).Error; err != nil {
				return translateError(child.entity, err)
			}
		}

		result := tx.Delete(&models.User{}, userID)
		if result.Error != nil {
			return translateError("user", result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound("user")
		}
		return nil
	})
}
