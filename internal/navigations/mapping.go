package navigations

import (
	"net/url"
	"strings"

	"github.com/JaimeStill/ern-portal/pkg/pagination"
	"github.com/JaimeStill/ern-portal/pkg/query"
	"github.com/JaimeStill/ern-portal/pkg/repository"
	"github.com/JaimeStill/ern-portal/pkg/routing"
	"github.com/google/uuid"
)

var projection = query.
	NewProjectionMap("public", "navigations", "n").
	Project("id", "ID").
	Project("route_name", "RouteName").
	Project("target_path", "TargetPath").
	Project("origin", "Origin").
	Project("scroll_x", "ScrollX").
	Project("scroll_y", "ScrollY").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanNavigation(s repository.Scanner) (Navigation, error) {
	var n Navigation
	err := s.Scan(
		&n.ID, &n.RouteName, &n.TargetPath, &n.Origin,
		&n.ScrollX, &n.ScrollY, &n.CreatedAt,
	)
	return n, err
}

type Filters struct {
	RouteName *string
	Origin    *string
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if rn := values.Get("route_name"); rn != "" {
		f.RouteName = &rn
	}
	if o := values.Get("origin"); o != "" {
		f.Origin = &o
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("RouteName", f.RouteName).
		WhereEquals("Origin", f.Origin)
}

// normalizePath reduces a client-reported location to the bare path the
// route table is keyed by: query and fragment are dropped and trailing
// slashes removed, keeping the root.
func normalizePath(p string) (string, error) {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		return "", ErrInvalidTarget
	}
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		return trimmed, nil
	}
	return "/", nil
}

func listQuery(page pagination.PageRequest, filters Filters) *query.Builder {
	qb := query.NewBuilder(projection, defaultSort)
	page.Apply(qb, "TargetPath")
	return filters.Apply(qb)
}

func findQuery(id uuid.UUID) (string, []any) {
	return query.NewBuilder(projection, defaultSort).
		WhereEquals("ID", id).
		Build()
}

// normalizeRequest normalizes the target and origin of req. An origin that
// is not an absolute path is dropped rather than failing the navigation.
func normalizeRequest(req routing.NavigationRequest) (routing.NavigationRequest, error) {
	target, err := normalizePath(req.TargetPath)
	if err != nil {
		return req, err
	}
	req.TargetPath = target

	if req.Origin != nil {
		if origin, err := normalizePath(*req.Origin); err != nil {
			req.Origin = nil
		} else {
			req.Origin = &origin
		}
	}
	return req, nil
}
