package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/ern-portal/internal/api"
	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/internal/infrastructure"
	"github.com/JaimeStill/ern-portal/pkg/lifecycle"
	"github.com/JaimeStill/ern-portal/pkg/locale"
	"github.com/JaimeStill/ern-portal/pkg/middleware"
	"github.com/JaimeStill/ern-portal/pkg/module"
	"github.com/JaimeStill/ern-portal/pkg/routing"
	"github.com/JaimeStill/ern-portal/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
	table *routing.Table,
	tracker *catalog.Tracker,
) (*Modules, error) {
	if table.BaseURL() == cfg.API.BasePath {
		return nil, fmt.Errorf("site base_url and api base_path both resolve to %s", cfg.API.BasePath)
	}

	localizer, err := locale.New(&cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale init failed: %w", err)
	}

	apiModule := api.NewModule(cfg, infra, table, tracker)

	appModule, err := app.NewModule(app.Options{
		Table:     table,
		Tracker:   tracker,
		Localizer: localizer,
		APIBase:   cfg.API.BasePath,
		Logger:    infra.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("app init failed: %w", err)
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(readiness lifecycle.ReadinessChecker) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !readiness.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
