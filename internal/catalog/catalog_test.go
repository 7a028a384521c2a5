package catalog_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/pkg/routing"
)

func TestDefinitions(t *testing.T) {
	want := []struct {
		name string
		path string
		page routing.PageID
	}{
		{"home", "/", catalog.PageHome},
		{"about", "/about", catalog.PageAbout},
		{"contact", "/contact", catalog.PageContact},
		{"governance", "/governance", catalog.PageGovernance},
		{"documents", "/documents", catalog.PageDocuments},
		{"dashboard", "/dashboard", catalog.PageDashboard},
		{"disclaimer", "/disclaimer", catalog.PageDisclaimer},
		{"privacy", "/privacy", catalog.PagePrivacyPolicy},
		{"members", "/members-area", catalog.PageMembersArea},
	}

	defs := catalog.Definitions()
	if len(defs) != len(want) {
		t.Fatalf("len = %d, want %d", len(defs), len(want))
	}
	for i, w := range want {
		if defs[i].Name != w.name || defs[i].Path != w.path || defs[i].Page != w.page {
			t.Errorf("defs[%d] = %+v, want %s %s %s", i, defs[i], w.name, w.path, w.page)
		}
	}
}

func TestNew_EndToEnd(t *testing.T) {
	table, err := catalog.New(&config.SiteConfig{BaseURL: "/"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if table.Len() != 9 {
		t.Errorf("Len() = %d, want 9", table.Len())
	}

	tests := []struct {
		path    string
		want    string
		wantErr error
	}{
		{"/documents", "documents", nil},
		{"/", "home", nil},
		{"/members-area", "members", nil},
		{"/unknown", "", routing.ErrRouteNotFound},
		{"/members", "", routing.ErrRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			first, err := table.Resolve(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve(%q) err = %v, want %v", tt.path, err, tt.wantErr)
			}
			if first.Name != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, first.Name, tt.want)
			}

			second, _ := table.Resolve(tt.path)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("Resolve not idempotent: %+v then %+v", first, second)
			}
		})
	}
}

func TestNew_SelectsPages(t *testing.T) {
	table, err := catalog.New(&config.SiteConfig{
		BaseURL: "/portal",
		Pages:   []string{"members", "home", "privacy"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var names []string
	for _, r := range table.Routes() {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(names, []string{"home", "privacy", "members"}) {
		t.Errorf("routes = %v, want catalog order", names)
	}

	if _, err := table.Resolve("/about"); !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("deselected route resolved: err = %v", err)
	}

	href, err := table.Href("members")
	if err != nil || href != "/portal/members-area" {
		t.Errorf("Href(members) = %q, %v", href, err)
	}
}

func TestNew_UnknownPage(t *testing.T) {
	_, err := catalog.New(&config.SiteConfig{Pages: []string{"home", "blog"}})
	if !errors.Is(err, routing.ErrRouteNotFound) {
		t.Errorf("err = %v, want ErrRouteNotFound", err)
	}
}
