package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"pacs_automation/domain/entities"

	"github.com/joho/godotenv"
)

// Environment variable names. The credential names mirror the PACS
// login form fields.
const (
	EnvUsername      = "j_username"
	EnvPassword      = "j_password"
	EnvListenAddr    = "PACS_LISTEN_ADDR"
	EnvHeadless      = "PACS_HEADLESS"
	EnvStepTimeout   = "PACS_STEP_TIMEOUT"
	EnvLogLevel      = "PACS_LOG_LEVEL"
	EnvScreenshotDir = "PACS_SCREENSHOT_DIR"
)

// Config is the process-wide configuration, loaded once at startup.
type Config struct {
	ListenAddr string

	// DefaultCredentials apply only to requests that omit credentials
	// entirely. They may be empty.
	DefaultCredentials entities.Credentials

	Headless      bool
	StepTimeout   time.Duration
	LogLevel      string
	ScreenshotDir string
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory.
func Load() (Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr: envOr(EnvListenAddr, ":8000"),
		DefaultCredentials: entities.Credentials{
			Username: os.Getenv(EnvUsername),
			Password: os.Getenv(EnvPassword),
		},
		Headless:      true,
		StepTimeout:   30 * time.Second,
		LogLevel:      envOr(EnvLogLevel, "info"),
		ScreenshotDir: os.Getenv(EnvScreenshotDir),
	}

	if v := os.Getenv(EnvHeadless); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvHeadless, v, err)
		}
		cfg.Headless = headless
	}
	if v := os.Getenv(EnvStepTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvStepTimeout, v, err)
		}
		cfg.StepTimeout = d
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
