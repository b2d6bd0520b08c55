// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Covers defaults, overrides and validation failures
package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath is empty")
	}
	if cfg.VisionModel != "gpt-4o-mini" {
		t.Errorf("VisionModel = %s, want gpt-4o-mini", cfg.VisionModel)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.MaxIterations != 256 {
		t.Errorf("MaxIterations = %d, want 256", cfg.MaxIterations)
	}
	if cfg.SevereThreshold != 80 || cfg.ModerateThreshold != 50 {
		t.Errorf("thresholds = %g/%g, want 80/50", cfg.SevereThreshold, cfg.ModerateThreshold)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DERMAZEEN_DB_PATH", "/tmp/test.db")
	t.Setenv("DERMAZEEN_OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_MAX_RETRIES", "5")
	t.Setenv("OPENAI_RETRY_DELAY", "500ms")
	t.Setenv("DERMAZEEN_MAX_ITERATIONS", "128")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %s", cfg.DBPath)
	}
	if cfg.VisionModel != "gpt-4o" {
		t.Errorf("VisionModel = %s", cfg.VisionModel)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 500*time.Millisecond {
		t.Errorf("RetryDelay = %v", cfg.RetryDelay)
	}
	if cfg.MaxIterations != 128 {
		t.Errorf("MaxIterations = %d", cfg.MaxIterations)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("OPENAI_MAX_RETRIES", "not-a-number")
	t.Setenv("OPENAI_RETRY_DELAY", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want default 2s", cfg.RetryDelay)
	}
}

func TestValidateRetryRange(t *testing.T) {
	t.Setenv("OPENAI_MAX_RETRIES", "11")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "OPENAI_MAX_RETRIES") {
		t.Errorf("Load() error = %v, want retry range error", err)
	}
}

func TestValidateThresholdOrdering(t *testing.T) {
	t.Setenv("DERMAZEEN_MODERATE_THRESHOLD", "90")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "MODERATE_THRESHOLD") {
		t.Errorf("Load() error = %v, want threshold ordering error", err)
	}
}

func TestThresholdsConversion(t *testing.T) {
	t.Setenv("DERMAZEEN_SEVERE_THRESHOLD", "85")
	t.Setenv("DERMAZEEN_MODERATE_THRESHOLD", "55")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	th := cfg.Thresholds()
	if th.Severe != 85 || th.Moderate != 55 {
		t.Errorf("Thresholds() = %+v, want 85/55", th)
	}
	// Untouched fields keep the analyzer defaults.
	if th.PrimaryFloor != 20 {
		t.Errorf("PrimaryFloor = %g, want default 20", th.PrimaryFloor)
	}
}
