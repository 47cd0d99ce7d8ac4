package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/datatypes"
)

type AccessibilityLogRepository interface {
	Create(entry *models.AccessibilityLog) error
	ListRecentByUser(userID uint, limit int) ([]models.AccessibilityLog, error)
}

type AccessibilityLogInput struct {
	FeatureUsed string         `json:"feature_used"`
	Action      string         `json:"action"`
	SessionID   string         `json:"session_id"`
	ContextData map[string]any `json:"context_data"`
}

type AccessibilityLogService struct {
	users UserExistenceRepository
	logs  AccessibilityLogRepository
	now   func() time.Time
}

func NewAccessibilityLogService(users UserExistenceRepository, logs AccessibilityLogRepository) *AccessibilityLogService {
	return &AccessibilityLogService{users: users, logs: logs, now: utcNow}
}

func (service *AccessibilityLogService) Record(userID uint, input AccessibilityLogInput) (models.AccessibilityLog, error) {
	if err := requireUser(service.users, userID); err != nil {
		return models.AccessibilityLog{}, err
	}

	feature := strings.TrimSpace(input.FeatureUsed)
	action := strings.TrimSpace(input.Action)
	if feature == "" || action == "" {
		return models.AccessibilityLog{}, ErrFeatureRequired
	}

	contextData := datatypes.JSONMap(input.ContextData)
	if contextData == nil {
		contextData = datatypes.JSONMap{}
	}
	entry := models.AccessibilityLog{
		UserID:      userID,
		FeatureUsed: feature,
		Action:      action,
		Timestamp:   service.now(),
		SessionID:   strings.TrimSpace(input.SessionID),
		ContextData: contextData,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.AccessibilityLog{}, err
	}
	return entry, nil
}

func (service *AccessibilityLogService) ListRecent(userID uint, limit int) ([]models.AccessibilityLog, error) {
	if err := requireUser(service.users, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return service.logs.ListRecentByUser(userID, limit)
}
