// Package routing resolves request paths against an immutable table of page routes
// and computes the viewport scroll target applied after each navigation.
//
// A Table is built once during application bootstrap and shared read-only with
// every component that needs to resolve paths. Resolution is a pure lookup over
// static path patterns, so a Table is safe for concurrent use without locking.
package routing

// PageID is an opaque reference to a renderable page unit.
// The resolver never inspects it; the rendering host maps it to a view.
type PageID string

// RouteDefinition associates a unique route name and static path with a page.
type RouteDefinition struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Page PageID `json:"page"`
}

// ScrollPosition is a viewport scroll offset in pixels.
type ScrollPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NavigationRequest describes a client-side transition to TargetPath.
// Origin and Saved are optional: Origin is the path being left and Saved is a
// previously recorded scroll offset for the origin/target pair.
type NavigationRequest struct {
	TargetPath string          `json:"target_path"`
	Origin     *string         `json:"origin,omitempty"`
	Saved      *ScrollPosition `json:"saved,omitempty"`
}

// Navigation is the outcome of a successful navigation: the matched route and
// the scroll position the host should apply.
type Navigation struct {
	Route  RouteDefinition `json:"route"`
	Scroll ScrollPosition  `json:"scroll"`
}
