// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/mail"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/inquiry"
)

// DefaultEnvFile is loaded if present; a missing file is not an error.
const DefaultEnvFile = ".env"

// Config holds all application configuration.
type Config struct {
	// Recipient receives consultation drafts.
	Recipient string
	// SubjectPrefix is prepended to every draft subject.
	SubjectPrefix string
	// ConfirmDelay is how long the "submitted" confirmation stays visible.
	ConfirmDelay time.Duration
	// LogPath is the structured log file. Empty disables logging.
	LogPath string
	// SkipSplash starts directly on the site without the welcome animation.
	SkipSplash bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Recipient:     content.ContactInfo().Email,
		SubjectPrefix: "预约咨询",
		ConfirmDelay:  3 * time.Second,
	}
}

// Load reads an optional env file, then environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	def := Default()
	delay, err := getEnvDuration("GREENHOPE_CONFIRM_DELAY", def.ConfirmDelay)
	if err != nil {
		return nil, err
	}
	skipSplash, err := getEnvBool("GREENHOPE_NO_SPLASH", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Recipient:     getEnv("GREENHOPE_RECIPIENT", def.Recipient),
		SubjectPrefix: getEnv("GREENHOPE_SUBJECT_PREFIX", def.SubjectPrefix),
		ConfirmDelay:  delay,
		LogPath:       getEnv("GREENHOPE_LOG", ""),
		SkipSplash:    skipSplash,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Settings returns the draft addressing derived from c.
func (c *Config) Settings() inquiry.Settings {
	return inquiry.Settings{To: c.Recipient, SubjectPrefix: c.SubjectPrefix}
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Recipient == "" {
		return fmt.Errorf("GREENHOPE_RECIPIENT cannot be empty")
	}
	if _, err := mail.ParseAddress(c.Recipient); err != nil {
		return fmt.Errorf("GREENHOPE_RECIPIENT %q: %w", c.Recipient, err)
	}
	if c.ConfirmDelay <= 0 {
		return fmt.Errorf("GREENHOPE_CONFIRM_DELAY must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s %q: %w", key, v, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, v, err)
	}
	return d, nil
}
