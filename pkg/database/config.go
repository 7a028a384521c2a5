package database

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// Config contains the connection settings for the navigation log database.
type Config struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
	SSLMode         string `toml:"ssl_mode"`
	ApplicationName string `toml:"application_name"`
	Migrate         bool   `toml:"migrate"`
}

// Env maps environment variable names for database configuration.
type Env struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
	SSLMode         string
	ApplicationName string
}

var sslModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

// ConnMaxLifetimeDuration parses and returns the connection max lifetime as a time.Duration.
func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

// ConnTimeoutDuration parses and returns the connection timeout as a time.Duration.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Dsn returns the PostgreSQL keyword/value connection string. Values are
// quoted when needed, so passwords may contain spaces and quotes.
func (c *Config) Dsn() string {
	pairs := []string{
		"host=" + quote(c.Host),
		"port=" + strconv.Itoa(c.Port),
		"dbname=" + quote(c.Name),
		"user=" + quote(c.User),
		"password=" + quote(c.Password),
		"sslmode=" + c.SSLMode,
	}
	if c.ApplicationName != "" {
		pairs = append(pairs, "application_name="+quote(c.ApplicationName))
	}
	return strings.Join(pairs, " ")
}

func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Finalize applies defaults, loads environment overrides, and validates the database configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	mergeString(&c.Host, overlay.Host)
	mergeString(&c.Name, overlay.Name)
	mergeString(&c.User, overlay.User)
	mergeString(&c.Password, overlay.Password)
	mergeString(&c.ConnMaxLifetime, overlay.ConnMaxLifetime)
	mergeString(&c.ConnTimeout, overlay.ConnTimeout)
	mergeString(&c.SSLMode, overlay.SSLMode)
	mergeString(&c.ApplicationName, overlay.ApplicationName)
	mergeInt(&c.Port, overlay.Port)
	mergeInt(&c.MaxOpenConns, overlay.MaxOpenConns)
	mergeInt(&c.MaxIdleConns, overlay.MaxIdleConns)
	if overlay.Migrate {
		c.Migrate = true
	}
}

func (c *Config) loadDefaults() {
	c.Host = or(c.Host, "localhost")
	c.Port = orInt(c.Port, 5432)
	c.MaxOpenConns = orInt(c.MaxOpenConns, 25)
	c.MaxIdleConns = orInt(c.MaxIdleConns, 5)
	c.ConnMaxLifetime = or(c.ConnMaxLifetime, "15m")
	c.ConnTimeout = or(c.ConnTimeout, "5s")
	c.SSLMode = or(c.SSLMode, "disable")
	c.ApplicationName = or(c.ApplicationName, "ern-portal")
}

func (c *Config) loadEnv(env *Env) {
	mergeString(&c.Host, lookup(env.Host))
	mergeString(&c.Name, lookup(env.Name))
	mergeString(&c.User, lookup(env.User))
	mergeString(&c.Password, lookup(env.Password))
	mergeString(&c.ConnMaxLifetime, lookup(env.ConnMaxLifetime))
	mergeString(&c.ConnTimeout, lookup(env.ConnTimeout))
	mergeString(&c.SSLMode, lookup(env.SSLMode))
	mergeString(&c.ApplicationName, lookup(env.ApplicationName))
	mergeInt(&c.Port, lookupInt(env.Port))
	mergeInt(&c.MaxOpenConns, lookupInt(env.MaxOpenConns))
	mergeInt(&c.MaxIdleConns, lookupInt(env.MaxIdleConns))
}

func (c *Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.User == "" {
		return fmt.Errorf("user required")
	}
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	if !slices.Contains(sslModes, c.SSLMode) {
		return fmt.Errorf("invalid ssl_mode: %s", c.SSLMode)
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max_idle_conns (%d) exceeds max_open_conns (%d)", c.MaxIdleConns, c.MaxOpenConns)
	}
	if _, err := pgx.ParseConfig(c.Dsn()); err != nil {
		return fmt.Errorf("invalid connection settings: %w", err)
	}
	return nil
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

func lookupInt(name string) int {
	n, err := strconv.Atoi(lookup(name))
	if err != nil {
		return 0
	}
	return n
}
