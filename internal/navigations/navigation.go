// Package navigations records client-side page transitions reported by the
// web application and exposes the navigation log over the API.
package navigations

import (
	"time"

	"github.com/JaimeStill/ern-portal/pkg/routing"
	"github.com/google/uuid"
)

// Navigation is a persisted client transition to a resolved route.
type Navigation struct {
	ID         uuid.UUID `json:"id"`
	RouteName  string    `json:"route_name"`
	TargetPath string    `json:"target_path"`
	Origin     *string   `json:"origin,omitempty"`
	ScrollX    int       `json:"scroll_x"`
	ScrollY    int       `json:"scroll_y"`
	CreatedAt  time.Time `json:"created_at"`
}

// Result is returned to the client after a navigation is recorded.
// Scroll is the position the client applies once the page renders.
type Result struct {
	Navigation Navigation              `json:"navigation"`
	Route      routing.RouteDefinition `json:"route"`
	Scroll     routing.ScrollPosition  `json:"scroll"`
}
