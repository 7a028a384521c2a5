// Package database manages the PostgreSQL connection pool and schema migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/JaimeStill/ern-portal/pkg/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// System owns the connection pool and ties it to the application lifecycle.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn       *sql.DB
	cfg        *Config
	migrations fs.FS
	logger     *slog.Logger
}

// New opens a pool with cfg. The pool is not contacted until Start.
// When cfg.Migrate is set, migrations are read from the root of migrations.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:       conn,
		cfg:        cfg,
		migrations: migrations,
		logger:     logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Start verifies connectivity, applies migrations, and registers pool shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.logger.Info("database connected", "host", d.cfg.Host, "name", d.cfg.Name)

	if d.cfg.Migrate && d.migrations != nil {
		version, err := Migrate(d.cfg, d.migrations)
		if err != nil {
			return err
		}
		d.logger.Info("database migrated", "version", version)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connections")
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
		}
	})

	return nil
}
