package routing_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/JaimeStill/ern-portal/pkg/routing"
)

var testRoutes = []routing.RouteDefinition{
	{Name: "home", Path: "/", Page: "Home"},
	{Name: "about", Path: "/about", Page: "About"},
	{Name: "documents", Path: "/documents", Page: "Documents"},
	{Name: "members", Path: "/members-area", Page: "MembersArea"},
}

func newTestTable(t *testing.T, base string) *routing.Table {
	t.Helper()
	table, err := routing.NewTable(routing.Config{BaseURL: base}, testRoutes...)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

func TestNewTable(t *testing.T) {
	table := newTestTable(t, "")

	if table.Len() != len(testRoutes) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(testRoutes))
	}

	if table.BaseURL() != "/" {
		t.Errorf("BaseURL() = %q, want %q", table.BaseURL(), "/")
	}
}

func TestNewTable_Empty(t *testing.T) {
	table, err := routing.NewTable(routing.Config{})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if _, err := table.Resolve("/"); !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("Resolve() error = %v, want %v", err, routing.ErrRouteNotFound)
	}
}

func TestNewTable_Duplicates(t *testing.T) {
	tests := []struct {
		name string
		defs []routing.RouteDefinition
	}{
		{
			name: "duplicate path",
			defs: []routing.RouteDefinition{
				{Name: "home", Path: "/", Page: "Home"},
				{Name: "index", Path: "/", Page: "Index"},
			},
		},
		{
			name: "duplicate name",
			defs: []routing.RouteDefinition{
				{Name: "home", Path: "/", Page: "Home"},
				{Name: "home", Path: "/home", Page: "Home"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := routing.NewTable(routing.Config{}, tt.defs...)
			if !errors.Is(err, routing.ErrDuplicateRoute) {
				t.Errorf("NewTable() error = %v, want %v", err, routing.ErrDuplicateRoute)
			}
			if table != nil {
				t.Error("NewTable() should not return a table on failure")
			}
		})
	}
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		def  routing.RouteDefinition
	}{
		{"empty name", routing.RouteDefinition{Path: "/x", Page: "X"}},
		{"empty path", routing.RouteDefinition{Name: "x", Page: "X"}},
		{"relative path", routing.RouteDefinition{Name: "x", Path: "x", Page: "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := routing.NewTable(routing.Config{}, tt.def)
			if !errors.Is(err, routing.ErrInvalidRoute) {
				t.Errorf("NewTable() error = %v, want %v", err, routing.ErrInvalidRoute)
			}
		})
	}
}

func TestTable_Resolve(t *testing.T) {
	table := newTestTable(t, "/")

	for _, want := range testRoutes {
		t.Run(want.Path, func(t *testing.T) {
			got, err := table.Resolve(want.Path)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", want.Path, err)
			}
			if got != want {
				t.Errorf("Resolve(%q) = %+v, want %+v", want.Path, got, want)
			}
		})
	}
}

func TestTable_Resolve_NotFound(t *testing.T) {
	table := newTestTable(t, "/")

	paths := []string{"/unknown", "/about/", "/About", "about", "", "/documents/1"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			_, err := table.Resolve(path)
			if !errors.Is(err, routing.ErrRouteNotFound) {
				t.Errorf("Resolve(%q) error = %v, want %v", path, err, routing.ErrRouteNotFound)
			}
		})
	}
}

func TestTable_Resolve_Idempotent(t *testing.T) {
	table := newTestTable(t, "/")

	for _, path := range []string{"/documents", "/missing"} {
		first, firstErr := table.Resolve(path)
		second, secondErr := table.Resolve(path)

		if first != second {
			t.Errorf("Resolve(%q) = %+v then %+v", path, first, second)
		}
		if (firstErr == nil) != (secondErr == nil) {
			t.Errorf("Resolve(%q) errors differ: %v then %v", path, firstErr, secondErr)
		}
	}
}

func TestTable_Resolve_Concurrent(t *testing.T) {
	table := newTestTable(t, "/")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := testRoutes[i%len(testRoutes)]
			got, err := table.Resolve(want.Path)
			if err != nil || got != want {
				t.Errorf("Resolve(%q) = %+v, %v", want.Path, got, err)
			}
		}(i)
	}
	wg.Wait()
}

func TestTable_Navigate(t *testing.T) {
	table := newTestTable(t, "/")
	origin := "/about"

	nav, err := table.Navigate(routing.NavigationRequest{
		TargetPath: "/documents",
		Origin:     &origin,
		Saved:      &routing.ScrollPosition{X: 10, Y: 400},
	})
	if err != nil {
		t.Fatalf("Navigate() error = %v", err)
	}

	if nav.Route.Name != "documents" {
		t.Errorf("Route.Name = %q, want %q", nav.Route.Name, "documents")
	}

	if nav.Scroll != (routing.ScrollPosition{}) {
		t.Errorf("Scroll = %+v, want {X:0 Y:0}", nav.Scroll)
	}
}

func TestTable_Navigate_NotFound(t *testing.T) {
	table := newTestTable(t, "/")

	nav, err := table.Navigate(routing.NavigationRequest{TargetPath: "/nope"})
	if !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("Navigate() error = %v, want %v", err, routing.ErrRouteNotFound)
	}
	if nav != nil {
		t.Error("Navigate() should return nil navigation on miss")
	}
}

func TestTable_Lookup(t *testing.T) {
	table := newTestTable(t, "/")

	route, err := table.Lookup("members")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if route.Path != "/members-area" {
		t.Errorf("Path = %q, want %q", route.Path, "/members-area")
	}

	if _, err := table.Lookup("contact"); !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("Lookup() error = %v, want %v", err, routing.ErrRouteNotFound)
	}
}

func TestTable_Href(t *testing.T) {
	tests := []struct {
		base string
		name string
		want string
	}{
		{"/", "home", "/"},
		{"/", "about", "/about"},
		{"/portal", "home", "/portal/"},
		{"/portal/", "about", "/portal/about"},
		{"apps/ern", "members", "/apps/ern/members-area"},
	}

	for _, tt := range tests {
		t.Run(tt.base+" "+tt.name, func(t *testing.T) {
			table := newTestTable(t, tt.base)
			got, err := table.Href(tt.name)
			if err != nil {
				t.Fatalf("Href() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Href(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestTable_Select(t *testing.T) {
	table := newTestTable(t, "/portal")

	sub, err := table.Select("members", "home")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	routes := sub.Routes()
	if len(routes) != 2 {
		t.Fatalf("len(Routes()) = %d, want 2", len(routes))
	}

	if routes[0].Name != "home" || routes[1].Name != "members" {
		t.Errorf("Routes() order = [%s %s], want [home members]", routes[0].Name, routes[1].Name)
	}

	if sub.BaseURL() != "/portal" {
		t.Errorf("BaseURL() = %q, want %q", sub.BaseURL(), "/portal")
	}

	if _, err := sub.Resolve("/about"); !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("Resolve() on excluded route error = %v, want %v", err, routing.ErrRouteNotFound)
	}
}

func TestTable_Select_Unknown(t *testing.T) {
	table := newTestTable(t, "/")

	if _, err := table.Select("home", "contact"); !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("Select() error = %v, want %v", err, routing.ErrRouteNotFound)
	}
}

func TestTable_Routes_ReturnsCopy(t *testing.T) {
	table := newTestTable(t, "/")

	routes := table.Routes()
	routes[0].Path = "/changed"

	if _, err := table.Resolve("/"); err != nil {
		t.Errorf("Resolve() after mutating copy error = %v", err)
	}
	if table.Routes()[0].Path != "/" {
		t.Error("Routes() should return a copy")
	}
}
