package routes

import "net/http"

// Group is a set of routes sharing a URL prefix, such as the /routes and
// /navigations resources of the API. Children nest under the parent prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Route is a single method and pattern bound to a handler. Inside a Group the
// pattern is relative to the group prefix and "" addresses the prefix itself.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Flatten returns every route in g and its children with patterns made
// absolute under parent, in declaration order.
func (g Group) Flatten(parent string) []Route {
	prefix := parent + g.Prefix

	out := make([]Route, 0, len(g.Routes))
	for _, r := range g.Routes {
		r.Pattern = prefix + r.Pattern
		out = append(out, r)
	}
	for _, child := range g.Children {
		out = append(out, child.Flatten(prefix)...)
	}
	return out
}

func (r Route) pattern() string {
	return r.Method + " " + r.Pattern
}
