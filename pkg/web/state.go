package web

import (
	"encoding/json"
	"html/template"

	"github.com/JaimeStill/ern-portal/pkg/routing"
)

// InitialState is the bootstrap payload the client bundle reads from
// window.__INITIAL_STATE__. Route is nil when the request path did not resolve.
type InitialState struct {
	BaseURL string                   `json:"baseUrl"`
	APIBase string                   `json:"apiBase,omitempty"`
	Route   *routing.RouteDefinition `json:"route,omitempty"`
	Scroll  routing.ScrollPosition   `json:"scroll"`
}

// JS serializes the state for inline script embedding. encoding/json escapes
// <, > and & so the output cannot terminate the surrounding script element.
func (s InitialState) JS() (template.JS, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
