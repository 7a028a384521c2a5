package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/JaimeStill/ern-portal/pkg/query"
)

var (
	// ErrInvalidPage reports a page or page_size parameter that is not an integer.
	ErrInvalidPage = errors.New("invalid page parameter")
	// ErrInvalidSort reports a sort field the listing does not project.
	ErrInvalidSort = errors.New("invalid sort field")
)

// PageRequest is a client request for one page of a listing, with an optional
// free-text search and ordering.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps page and page size into the configured range.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = min(r.PageSize, cfg.MaxPageSize)
}

// Offset is the number of rows preceding the requested page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Apply adds the search term across searchFields and the requested ordering
// to b. The builder's default sort applies when no sort was requested.
func (r *PageRequest) Apply(b *query.Builder, searchFields ...string) *query.Builder {
	b.WhereSearch(r.Search, searchFields...)
	if len(r.Sort) > 0 {
		b.OrderByFields(r.Sort)
	}
	return b
}

// PageRequestFromQuery reads page, page_size, search and sort from values.
// Sort is comma-separated with a "-" prefix for descending order; every sort
// field must satisfy sortable. Omitted sizes fall back to cfg and out-of-range
// sizes are clamped, but a value that is not a number is rejected.
func PageRequestFromQuery(values url.Values, cfg Config, sortable func(field string) bool) (PageRequest, error) {
	page, err := intParam(values, "page")
	if err != nil {
		return PageRequest{}, err
	}
	pageSize, err := intParam(values, "page_size")
	if err != nil {
		return PageRequest{}, err
	}

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     query.ParseSortFields(values.Get("sort")),
	}
	if s := values.Get("search"); s != "" {
		req.Search = &s
	}

	for _, f := range req.Sort {
		if sortable != nil && !sortable(f.Field) {
			return PageRequest{}, fmt.Errorf("%w: %s", ErrInvalidSort, f.Field)
		}
	}

	req.Normalize(cfg)
	return req, nil
}

func intParam(values url.Values, key string) (int, error) {
	v := values.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPage, key, v)
	}
	return n, nil
}

// PageResult holds a page of rows with the metadata a client needs to walk
// the listing.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPageResult builds a PageResult. An empty listing still reports one page.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := max((total+pageSize-1)/pageSize, 1)

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
