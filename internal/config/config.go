package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

const EnvPrefix = "ACCESSAID"

const minSecretKeyLength = 32

var placeholderSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

// Config is read from ACCESSAID_* environment variables.
type Config struct {
	Port               int           `envconfig:"PORT" default:"8080"`
	DBDriver           string        `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath             string        `envconfig:"DB_PATH" default:"data/accessaid.db"`
	DatabaseURL        string        `envconfig:"DATABASE_URL" default:""`
	SecretKey          string        `envconfig:"SECRET_KEY" default:""`
	Timezone           string        `envconfig:"TZ" default:"UTC"`
	TokenTTL           time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	EnableSeedEndpoint bool          `envconfig:"ENABLE_SEED_ENDPOINT" default:"false"`
	CORSOrigins        string        `envconfig:"CORS_ORIGINS" default:"*"`

	Location *time.Location `ignored:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and resolves Location. The secret key is not
// required here so that commands which never issue tokens can run without
// it; see RequireSecretKey.
func (cfg *Config) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%s_PORT must be between 1 and 65535, got %d", EnvPrefix, cfg.Port)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case "sqlite":
		if strings.TrimSpace(cfg.DBPath) == "" {
			return fmt.Errorf("%s_DB_PATH is required for the sqlite driver", EnvPrefix)
		}
	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return fmt.Errorf("%s_DATABASE_URL is required for the postgres driver", EnvPrefix)
		}
	default:
		return fmt.Errorf("%s_DB_DRIVER must be sqlite or postgres, got %q", EnvPrefix, cfg.DBDriver)
	}

	location, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone))
	if err != nil {
		return fmt.Errorf("%s_TZ is not a valid location: %w", EnvPrefix, err)
	}
	cfg.Location = location

	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("%s_TOKEN_TTL must be positive, got %s", EnvPrefix, cfg.TokenTTL)
	}
	if _, err := cfg.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

func (cfg *Config) RequireSecretKey() (string, error) {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		return "", fmt.Errorf("%s_SECRET_KEY is required", EnvPrefix)
	}
	if _, placeholder := placeholderSecretKeys[strings.ToLower(secret)]; placeholder {
		return "", fmt.Errorf("%s_SECRET_KEY must not use a placeholder value", EnvPrefix)
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("%s_SECRET_KEY must be at least %d characters", EnvPrefix, minSecretKeyLength)
	}
	return secret, nil
}

func (cfg *Config) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("%s_LOG_LEVEL is invalid: %w", EnvPrefix, err)
	}
	if level == zerolog.NoLevel {
		return zerolog.InfoLevel, nil
	}
	return level, nil
}

func (cfg *Config) AllowedOrigins() string {
	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		return "*"
	}
	return origins
}

// ListenAddr returns the fiber listen address for Port.
func (cfg *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", cfg.Port)
}
