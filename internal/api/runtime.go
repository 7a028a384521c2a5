package api

import (
	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/internal/infrastructure"
	"github.com/JaimeStill/ern-portal/pkg/pagination"
	"github.com/JaimeStill/ern-portal/pkg/routing"
)

// Runtime extends Infrastructure with API-specific configuration and the
// shared route table.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Table      *routing.Table
	Tracker    *catalog.Tracker
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	table *routing.Table,
	tracker *catalog.Tracker,
) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Pagination: cfg.API.Pagination,
		Table:      table,
		Tracker:    tracker,
	}
}
