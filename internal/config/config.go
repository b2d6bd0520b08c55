// ABOUTME: Centralized configuration for the assessment engine and servers
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/omarZACK/Dermazeen/internal/analysis"
	"github.com/omarZACK/Dermazeen/internal/storage/sqlite"
)

// Config holds all configuration for the assessment system
type Config struct {
	// Storage settings
	DBPath string

	// OpenAI settings (image classifier)
	OpenAIKey   string
	VisionModel string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration

	// Engine settings
	MaxIterations            int
	SevereThreshold          float64
	ModerateThreshold        float64
	RelaxedSevereThreshold   float64
	RelaxedModerateThreshold float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:                   getEnv("DERMAZEEN_DB_PATH", sqlite.DefaultDBPath()),
		OpenAIKey:                os.Getenv("OPENAI_API_KEY"),
		VisionModel:              getEnv("DERMAZEEN_OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:                  getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:               getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:               getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		MaxIterations:            getEnvInt("DERMAZEEN_MAX_ITERATIONS", 256),
		SevereThreshold:          getEnvFloat("DERMAZEEN_SEVERE_THRESHOLD", 80),
		ModerateThreshold:        getEnvFloat("DERMAZEEN_MODERATE_THRESHOLD", 50),
		RelaxedSevereThreshold:   getEnvFloat("DERMAZEEN_RELAXED_SEVERE_THRESHOLD", 90),
		RelaxedModerateThreshold: getEnvFloat("DERMAZEEN_RELAXED_MODERATE_THRESHOLD", 70),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("DERMAZEEN_MAX_ITERATIONS must be positive, got %d", c.MaxIterations)
	}
	if c.ModerateThreshold >= c.SevereThreshold {
		return fmt.Errorf("DERMAZEEN_MODERATE_THRESHOLD (%g) must be below DERMAZEEN_SEVERE_THRESHOLD (%g)",
			c.ModerateThreshold, c.SevereThreshold)
	}
	if c.RelaxedModerateThreshold >= c.RelaxedSevereThreshold {
		return fmt.Errorf("DERMAZEEN_RELAXED_MODERATE_THRESHOLD (%g) must be below DERMAZEEN_RELAXED_SEVERE_THRESHOLD (%g)",
			c.RelaxedModerateThreshold, c.RelaxedSevereThreshold)
	}
	return nil
}

// Thresholds converts the configured cut-offs to the analyzer's shape.
func (c *Config) Thresholds() analysis.Thresholds {
	th := analysis.DefaultThresholds()
	th.Severe = c.SevereThreshold
	th.Moderate = c.ModerateThreshold
	th.RelaxedSevere = c.RelaxedSevereThreshold
	th.RelaxedModerate = c.RelaxedModerateThreshold
	return th
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
