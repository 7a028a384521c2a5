package routing

import (
	"fmt"
	"strings"
)

// Table is an ordered, immutable set of route definitions.
type Table struct {
	routes  []RouteDefinition
	byPath  map[string]int
	byName  map[string]int
	baseURL string
}

// NewTable validates defs and builds a Table in the given order.
// A repeated name or path fails with ErrDuplicateRoute so that an ambiguous
// table can never be used to resolve requests.
func NewTable(cfg Config, defs ...RouteDefinition) (*Table, error) {
	t := &Table{
		routes:  make([]RouteDefinition, 0, len(defs)),
		byPath:  make(map[string]int, len(defs)),
		byName:  make(map[string]int, len(defs)),
		baseURL: NormalizeBaseURL(cfg.BaseURL),
	}

	for _, def := range defs {
		if err := validate(def); err != nil {
			return nil, err
		}
		if _, ok := t.byName[def.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateRoute, def.Name)
		}
		if _, ok := t.byPath[def.Path]; ok {
			return nil, fmt.Errorf("%w: path %q", ErrDuplicateRoute, def.Path)
		}

		t.byName[def.Name] = len(t.routes)
		t.byPath[def.Path] = len(t.routes)
		t.routes = append(t.routes, def)
	}

	return t, nil
}

// Resolve returns the definition whose path equals path exactly.
// A miss returns ErrRouteNotFound; no default route is ever substituted.
func (t *Table) Resolve(path string) (RouteDefinition, error) {
	i, ok := t.byPath[path]
	if !ok {
		return RouteDefinition{}, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	return t.routes[i], nil
}

// Navigate resolves req.TargetPath and pairs the match with its scroll target.
func (t *Table) Navigate(req NavigationRequest) (*Navigation, error) {
	route, err := t.Resolve(req.TargetPath)
	if err != nil {
		return nil, err
	}
	return &Navigation{
		Route:  route,
		Scroll: ScrollTarget(req),
	}, nil
}

// Lookup returns the definition registered under name.
func (t *Table) Lookup(name string) (RouteDefinition, error) {
	i, ok := t.byName[name]
	if !ok {
		return RouteDefinition{}, fmt.Errorf("%w: name %s", ErrRouteNotFound, name)
	}
	return t.routes[i], nil
}

// Href returns the absolute application URL for the named route,
// including the base URL.
func (t *Table) Href(name string) (string, error) {
	route, err := t.Lookup(name)
	if err != nil {
		return "", err
	}
	return t.join(route.Path), nil
}

// Select builds a new Table holding only the named routes, preserving the
// order of the receiver. Unknown names fail with ErrRouteNotFound.
func (t *Table) Select(names ...string) (*Table, error) {
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := t.byName[name]; !ok {
			return nil, fmt.Errorf("%w: name %s", ErrRouteNotFound, name)
		}
		keep[name] = true
	}

	defs := make([]RouteDefinition, 0, len(keep))
	for _, route := range t.routes {
		if keep[route.Name] {
			defs = append(defs, route)
		}
	}

	return NewTable(Config{BaseURL: t.baseURL}, defs...)
}

// Routes returns a copy of the definitions in table order.
func (t *Table) Routes() []RouteDefinition {
	out := make([]RouteDefinition, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of definitions in the table.
func (t *Table) Len() int {
	return len(t.routes)
}

// BaseURL returns the normalized base URL the table was built with.
func (t *Table) BaseURL() string {
	return t.baseURL
}

func (t *Table) join(path string) string {
	if t.baseURL == "/" {
		return path
	}
	if path == "/" {
		return t.baseURL + "/"
	}
	return t.baseURL + path
}

func validate(def RouteDefinition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidRoute)
	}
	if def.Path == "" || !strings.HasPrefix(def.Path, "/") {
		return fmt.Errorf("%w: path %q must begin with /", ErrInvalidRoute, def.Path)
	}
	return nil
}
