// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Opens configuration, storage and the session service
package commands

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/omarZACK/Dermazeen/internal/catalog"
	"github.com/omarZACK/Dermazeen/internal/config"
	"github.com/omarZACK/Dermazeen/internal/engine"
	"github.com/omarZACK/Dermazeen/internal/session"
	"github.com/omarZACK/Dermazeen/internal/storage/sqlite"
)

// openService loads config, opens storage and builds the session service.
// The caller must Close the returned store.
func openService() (*session.Service, *sqlite.Store, *config.Config, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	store, err := sqlite.NewStore(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initializing storage: %w", err)
	}

	svc := session.New(store, catalog.Builtin(),
		engine.WithThresholds(cfg.Thresholds()),
		engine.WithMaxIterations(cfg.MaxIterations),
	)
	return svc, store, cfg, nil
}
