package routing

import "strings"

// Config holds table construction settings.
type Config struct {
	// BaseURL is the path prefix the application is served under.
	// Default: "/"
	BaseURL string `toml:"base_url"`
}

// NormalizeBaseURL returns base with a single leading slash and no trailing slash.
// An empty or root base normalizes to "/".
func NormalizeBaseURL(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base
}
