// Package api assembles the JSON API module from the domain handlers.
package api

import (
	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/internal/infrastructure"
	"github.com/JaimeStill/ern-portal/pkg/middleware"
	"github.com/JaimeStill/ern-portal/pkg/module"
	"github.com/JaimeStill/ern-portal/pkg/routing"
)

// NewModule creates the API module mounted at cfg.API.BasePath.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	table *routing.Table,
	tracker *catalog.Tracker,
) *module.Module {
	runtime := NewRuntime(cfg, infra, table, tracker)
	domain := NewDomain(runtime)

	m := module.New(cfg.API.BasePath, buildRoutes(runtime, domain))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))
	m.Use(middleware.Logger(runtime.Logger))

	return m
}
