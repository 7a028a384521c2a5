// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (lifecycle, logging, database) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/internal/navigations"
	"github.com/JaimeStill/ern-portal/pkg/database"
	"github.com/JaimeStill/ern-portal/pkg/lifecycle"
	"github.com/JaimeStill/ern-portal/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging, "service", "ern-portal", "version", cfg.Version)

	db, err := database.New(&cfg.Database, navigations.Migrations(), logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}, nil
}

// Start connects the database and registers it with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
