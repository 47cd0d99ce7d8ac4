package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/datatypes"
)

const (
	defaultSpeechRate = 1.0
	defaultVolume     = 1.0
)

type TTSHistoryRepository interface {
	Create(entry *models.TTSHistory) error
	ListRecentByUser(userID uint, limit int) ([]models.TTSHistory, error)
}

type TTSInput struct {
	Content         string         `json:"content"`
	VoiceSettings   map[string]any `json:"voice_settings"`
	SpeechRate      *float64       `json:"speech_rate"`
	Volume          *float64       `json:"volume"`
	DurationSeconds *float64       `json:"duration_seconds"`
	Context         string         `json:"context"`
}

// TTSService keeps the append-only log of spoken content.
type TTSService struct {
	users   UserExistenceRepository
	history TTSHistoryRepository
	now     func() time.Time
}

func NewTTSService(users UserExistenceRepository, history TTSHistoryRepository) *TTSService {
	return &TTSService{users: users, history: history, now: utcNow}
}

func (service *TTSService) Record(userID uint, input TTSInput) (models.TTSHistory, error) {
	if err := requireUser(service.users, userID); err != nil {
		return models.TTSHistory{}, err
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return models.TTSHistory{}, ErrContentRequired
	}

	speechRate := defaultSpeechRate
	if input.SpeechRate != nil {
		if *input.SpeechRate <= 0 {
			return models.TTSHistory{}, ErrInvalidSpeechRate
		}
		speechRate = *input.SpeechRate
	}
	volume := defaultVolume
	if input.Volume != nil {
		if *input.Volume < 0 {
			return models.TTSHistory{}, ErrInvalidVolume
		}
		volume = *input.Volume
	}

	context := strings.TrimSpace(input.Context)
	if context == "" {
		context = models.DefaultTTSContext
	}
	voiceSettings := datatypes.JSONMap(input.VoiceSettings)
	if voiceSettings == nil {
		voiceSettings = datatypes.JSONMap{}
	}

	entry := models.TTSHistory{
		UserID:          userID,
		Content:         content,
		VoiceSettings:   voiceSettings,
		SpeechRate:      speechRate,
		Volume:          volume,
		DurationSeconds: input.DurationSeconds,
		Timestamp:       service.now(),
		Context:         context,
	}
	if err := service.history.Create(&entry); err != nil {
		return models.TTSHistory{}, err
	}
	return entry, nil
}

// ListRecent returns the newest entries first.
func (service *TTSService) ListRecent(userID uint, limit int) ([]models.TTSHistory, error) {
	if err := requireUser(service.users, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return service.history.ListRecentByUser(userID, limit)
}
