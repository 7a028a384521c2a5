package navigations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/ern-portal/pkg/query"
	"github.com/JaimeStill/ern-portal/pkg/routing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"/", "/", false},
		{"/about", "/about", false},
		{"/about/", "/about", false},
		{"//", "/", false},
		{"/documents?page=2#top", "/documents", false},
		{"/#section", "/", false},
		{"about", "", true},
		{"", "", true},
		{"?q=1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizePath(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("err = %v, want ErrInvalidTarget", err)
			}
			if got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilters_Apply(t *testing.T) {
	filters := FiltersFromQuery(url.Values{
		"route_name": {"documents"},
		"origin":     {"/"},
	})

	search := "members"
	sql, args := filters.Apply(query.NewBuilder(projection, defaultSort).WhereSearch(&search, "TargetPath")).
		BuildPage(2, 10)

	for _, want := range []string{
		"n.target_path ILIKE $1",
		"n.route_name = $2",
		"n.origin = $3",
		"ORDER BY n.created_at DESC",
		"LIMIT 10 OFFSET 10",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("sql missing %q:\n%s", want, sql)
		}
	}
	if len(args) != 3 {
		t.Errorf("args = %v", args)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: /x", routing.ErrRouteNotFound), http.StatusNotFound},
		{ErrDuplicate, http.StatusConflict},
		{ErrInvalidTarget, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
