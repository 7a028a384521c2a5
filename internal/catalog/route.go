package catalog

import "github.com/JaimeStill/ern-portal/pkg/routing"

// Route is the API view of a route definition.
type Route struct {
	Name string         `json:"name"`
	Path string         `json:"path"`
	Page routing.PageID `json:"page"`
	Href string         `json:"href"`
	Hits int64          `json:"hits"`
}

// Resolution is the response body of a path resolution request.
type Resolution struct {
	Route  Route                  `json:"route"`
	Scroll routing.ScrollPosition `json:"scroll"`
}

func project(table *routing.Table, tracker *Tracker, def routing.RouteDefinition) Route {
	href, _ := table.Href(def.Name)
	return Route{
		Name: def.Name,
		Path: def.Path,
		Page: def.Page,
		Href: href,
		Hits: tracker.Hits(def.Name),
	}
}
