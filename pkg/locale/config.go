package locale

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
)

// Env maps environment variable names for locale configuration.
type Env struct {
	Default string
}

// Config holds localization settings.
type Config struct {
	// Default is the BCP 47 tag used when no requested language is supported.
	Default string `toml:"default"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	c.loadEnv(env)
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Default != "" {
		c.Default = overlay.Default
	}
}

func (c *Config) loadDefaults() {
	if c.Default == "" {
		c.Default = "en"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.Default); v != "" {
		c.Default = v
	}
}

func (c *Config) validate() error {
	if _, err := language.Parse(c.Default); err != nil {
		return fmt.Errorf("invalid default language %q: %w", c.Default, err)
	}
	return nil
}
