// Package module provides prefix-mounted HTTP modules with their own middleware chains.
// A module owns a single path prefix and receives requests with that prefix stripped,
// so the wrapped handler routes against module-relative paths.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/ern-portal/pkg/middleware"
)

// Module is an http.Handler mounted under a prefix.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a module for prefix. The prefix must be "/" or a single path
// segment with a leading slash (e.g. "/api"); anything else panics, since
// modules are wired once at startup.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Root reports whether the module is mounted at the server root.
func (m *Module) Root() bool {
	return m.prefix == "/"
}

// Use appends middleware to the module chain.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module router wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// Serve strips the module prefix from the request path and dispatches to Handler.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	if m.Root() {
		m.Handler().ServeHTTP(w, req)
		return
	}

	path := strings.TrimPrefix(req.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r := req.Clone(req.Context())
	r.URL.Path = path
	r.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r)
}

func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must begin with /", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
