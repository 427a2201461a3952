package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	SinkDiscard = "discard"
	SinkDB      = "db"
	SinkFile    = "file"
	SinkR2      = "r2"
)

type Config struct {
	Env             string   `yaml:"env" env:"ENV" env-default:"dev"`
	BindAddr        string   `yaml:"bind_addr" env:"BIND_ADDR" env-default:":8080"`
	SessionSecret   string   `yaml:"session_secret" env:"SESSION_SECRET"`
	SessionTTLHours int      `yaml:"session_ttl_hours" env:"SESSION_TTL_HOURS" env-default:"12"`
	CookieName      string   `yaml:"cookie_name" env:"SESSION_COOKIE" env-default:"kyra_session"`
	CookieSecure    bool     `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"false"`
	AllowedOrigins  []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`

	// how often expired and revoked sessions are purged from the registry
	SessionSweepInterval time.Duration `yaml:"session_sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"10m"`

	// empty keeps sessions in memory
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`

	RegistrationSink  string `yaml:"registration_sink" env:"REGISTRATION_SINK" env-default:"discard"`
	ArchiveDir        string `yaml:"archive_dir" env:"ARCHIVE_DIR" env-default:"./submissions"`
	R2AccessKeyID     string `yaml:"r2_access_key_id" env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `yaml:"r2_secret_access_key" env:"R2_SECRET_ACCESS_KEY"`
	R2Endpoint        string `yaml:"r2_endpoint" env:"R2_ENDPOINT"`
	R2BucketName      string `yaml:"r2_bucket_name" env:"R2_BUCKET_NAME"`

	// terminal client only; empty discards its logs
	TUILogFile string `yaml:"tui_log_file" env:"TUI_LOG_FILE"`
}

// Load reads .env (if present) and the environment, or the YAML file named by
// CONFIG_PATH with environment overrides on top.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	switch c.RegistrationSink {
	case SinkDiscard, SinkFile:
	case SinkDB:
		if c.DatabaseURL == "" {
			return fmt.Errorf("REGISTRATION_SINK=db requires DATABASE_URL")
		}
	case SinkR2:
		if c.R2Endpoint == "" || c.R2BucketName == "" {
			return fmt.Errorf("REGISTRATION_SINK=r2 requires R2_ENDPOINT and R2_BUCKET_NAME")
		}
	default:
		return fmt.Errorf("unknown REGISTRATION_SINK %q", c.RegistrationSink)
	}
	return nil
}

// RequireSessionSecret is checked by front-ends that issue session cookies.
func (c *Config) RequireSessionSecret() error {
	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	return nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
