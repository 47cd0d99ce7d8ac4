package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/accessaid/internal/db"
	"github.com/terraincognita07/accessaid/internal/seed"
	"github.com/terraincognita07/accessaid/internal/services"
)

const (
	defaultAuthTokenTTL = 7 * 24 * time.Hour

	loginAttemptLimit  = 8
	loginAttemptWindow = 15 * time.Minute
)

type Options struct {
	SecretKey          string
	TokenTTL           time.Duration
	Logger             zerolog.Logger
	EnableSeedEndpoint bool
}

type Handler struct {
	repositories *db.Repositories
	secretKey    []byte
	tokenTTL     time.Duration
	logger       zerolog.Logger
	seedEnabled  bool
	loginLimiter *attemptLimiter
	now          func() time.Time
}

func NewHandler(repositories *db.Repositories, options Options) (*Handler, error) {
	if repositories == nil {
		return nil, errors.New("repositories are required")
	}
	if strings.TrimSpace(options.SecretKey) == "" {
		return nil, errors.New("secret key is required")
	}
	tokenTTL := options.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultAuthTokenTTL
	}

	return &Handler{
		repositories: repositories,
		secretKey:    []byte(options.SecretKey),
		tokenTTL:     tokenTTL,
		logger:       options.Logger,
		seedEnabled:  options.EnableSeedEndpoint,
		loginLimiter: newAttemptLimiter(),
		now:          time.Now,
	}, nil
}

// requestServices bundles the services of one request. They all share a
// store session bound to the request context.
type requestServices struct {
	repositories      *db.Repositories
	auth              *services.AuthService
	users             *services.UserService
	reminders         *services.ReminderService
	tasks             *services.TaskService
	notifications     *services.NotificationService
	settings          *services.SettingsService
	tts               *services.TTSService
	devices           *services.DeviceSyncService
	accessibilityLogs *services.AccessibilityLogService
	mlModels          *services.MLModelService
}

func (handler *Handler) services(c *fiber.Ctx) *requestServices {
	repos := handler.repositories.WithContext(c.UserContext())
	return &requestServices{
		repositories:      repos,
		auth:              services.NewAuthService(repos.Users),
		users:             services.NewUserService(repos.Users),
		reminders:         services.NewReminderService(repos.Users, repos.Reminders),
		tasks:             services.NewTaskService(repos.Users, repos.Tasks),
		notifications:     services.NewNotificationService(repos.Users, repos.Reminders, repos.Notifications),
		settings:          services.NewSettingsService(repos.Users, repos.Settings),
		tts:               services.NewTTSService(repos.Users, repos.TTSHistory),
		devices:           services.NewDeviceSyncService(repos.Users, repos.Devices),
		accessibilityLogs: services.NewAccessibilityLogService(repos.Users, repos.AccessibilityLogs),
		mlModels:          services.NewMLModelService(repos.MLModels),
	}
}

func (handler *Handler) newSeeder() *seed.Seeder {
	return seed.NewSeeder(handler.repositories, handler.logger)
}
