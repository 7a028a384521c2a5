package main

import (
	"time"

	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/internal/infrastructure"
	"github.com/JaimeStill/ern-portal/pkg/middleware"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra *infrastructure.Infrastructure
	http  *httpServer
}

// NewServer creates and initializes the service with all subsystems.
// An invalid route table fails here, before anything starts listening.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	table, err := catalog.New(&cfg.Site)
	if err != nil {
		return nil, err
	}
	tracker := catalog.NewTracker(table)

	modules, err := NewModules(infra, cfg, table, tracker)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra.Lifecycle)
	modules.Mount(router)

	global := middleware.New()
	global.Use(middleware.TrimSlash())

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"base_url", table.BaseURL(),
		"routes", table.Len(),
	)

	return &Server{
		infra: infra,
		http:  newHTTPServer(&cfg.Server, global.Apply(router), cfg.ShutdownTimeoutDuration(), infra.Logger),
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
