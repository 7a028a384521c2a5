package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/ern-portal/pkg/routing"
)

const (
	// EnvSiteBaseURL overrides the path prefix the pages are served under.
	EnvSiteBaseURL = "SITE_BASE_URL"

	// EnvSitePages overrides the enabled route names (comma-separated).
	EnvSitePages = "SITE_PAGES"
)

// SiteConfig controls which page routes are served and where.
type SiteConfig struct {
	// BaseURL is the application base path. Default: "/"
	BaseURL string `toml:"base_url"`

	// Pages restricts the route table to the named routes.
	// Empty enables every route.
	Pages []string `toml:"pages"`
}

// Routing returns the route table construction settings.
func (c *SiteConfig) Routing() routing.Config {
	return routing.Config{BaseURL: c.BaseURL}
}

// Finalize applies defaults, loads environment overrides, and validates the site configuration.
func (c *SiteConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *SiteConfig) Merge(overlay *SiteConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Pages != nil {
		c.Pages = overlay.Pages
	}
}

func (c *SiteConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "/"
	}
}

func (c *SiteConfig) loadEnv() {
	if v := os.Getenv(EnvSiteBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvSitePages); v != "" {
		pages := strings.Split(v, ",")
		c.Pages = make([]string, 0, len(pages))
		for _, page := range pages {
			if trimmed := strings.TrimSpace(page); trimmed != "" {
				c.Pages = append(c.Pages, trimmed)
			}
		}
	}
}

func (c *SiteConfig) validate() error {
	c.BaseURL = routing.NormalizeBaseURL(c.BaseURL)
	if strings.Count(c.BaseURL, "/") != 1 {
		return fmt.Errorf("base_url %q must be a single path segment", c.BaseURL)
	}
	return nil
}
