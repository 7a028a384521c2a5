package app_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/pkg/locale"
	"github.com/JaimeStill/ern-portal/pkg/module"
	"github.com/JaimeStill/ern-portal/pkg/routing"
	"github.com/JaimeStill/ern-portal/web/app"
)

func newServer(t *testing.T, site *config.SiteConfig) (http.Handler, *catalog.Tracker) {
	t.Helper()

	table, err := catalog.New(site)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	tracker := catalog.NewTracker(table)

	localizer, err := locale.New(&locale.Config{Default: "en"})
	if err != nil {
		t.Fatalf("locale.New failed: %v", err)
	}

	m, err := app.NewModule(app.Options{
		Table:     table,
		Tracker:   tracker,
		Localizer: localizer,
		APIBase:   "/api",
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewModule failed: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router, tracker
}

func get(h http.Handler, path, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestModule_Pages(t *testing.T) {
	h, tracker := newServer(t, &config.SiteConfig{BaseURL: "/"})

	tests := []struct {
		path      string
		wantTitle string
		wantPage  string
		wantRoute string
	}{
		{"/", "Home | ERN", "Home", "home"},
		{"/documents", "Documents | ERN", "Documents", "documents"},
		{"/privacy", "Privacy Policy | ERN", "PrivacyPolicy", "privacy"},
		{"/members-area", "Members Area | ERN", "MembersArea", "members"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(h, tt.path, "")

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			body := w.Body.String()
			for _, want := range []string{
				"<title>" + tt.wantTitle + "</title>",
				`data-page="` + tt.wantPage + `"`,
				`"baseUrl":"/"`,
				`"apiBase":"/api"`,
				`"name":"` + tt.wantRoute + `"`,
				`"scroll":{"x":0,"y":0}`,
				`data-route="` + tt.wantRoute + `" aria-current="page"`,
				`src="/dist/app.js"`,
			} {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}

			if tracker.Hits(tt.wantRoute) != 1 {
				t.Errorf("Hits(%s) = %d, want 1", tt.wantRoute, tracker.Hits(tt.wantRoute))
			}
		})
	}
}

func TestModule_NotFound(t *testing.T) {
	h, tracker := newServer(t, &config.SiteConfig{BaseURL: "/"})

	w := get(h, "/unknown", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-page="NotFound"`) {
		t.Error("404 view not rendered")
	}
	if strings.Contains(body, `"route":`) {
		t.Error("initial state should carry no route for a miss")
	}
	for name, hits := range tracker.Snapshot() {
		if hits != 0 {
			t.Errorf("Hits(%s) = %d after a miss", name, hits)
		}
	}
}

func TestModule_BaseURL(t *testing.T) {
	h, _ := newServer(t, &config.SiteConfig{BaseURL: "/portal", Pages: []string{"home", "about"}})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantPage   string
	}{
		{"base root", "/portal", http.StatusOK, "Home"},
		{"page under base", "/portal/about", http.StatusOK, "About"},
		{"deselected page", "/portal/documents", http.StatusNotFound, "NotFound"},
		{"asset under base", "/portal/dist/app.js", http.StatusOK, ""},
		{"public file under base", "/portal/robots.txt", http.StatusOK, ""},
		{"outside base", "/about", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(h, tt.path, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantPage != "" && !strings.Contains(w.Body.String(), `data-page="`+tt.wantPage+`"`) {
				t.Errorf("page %s not rendered", tt.wantPage)
			}
		})
	}

	body := get(h, "/portal/about", "").Body.String()
	for _, want := range []string{
		`href="/portal/"`,
		`href="/portal/about"`,
		`src="/portal/dist/app.js"`,
		`"baseUrl":"/portal"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, `data-route="documents"`) {
		t.Error("nav lists a deselected page")
	}
}

func TestModule_Localized(t *testing.T) {
	h, _ := newServer(t, &config.SiteConfig{})

	body := get(h, "/about", "nl-NL,nl;q=0.9,en;q=0.5").Body.String()

	for _, want := range []string{
		`<html lang="nl">`,
		"<title>Over ons | ERN</title>",
		">Privacyverklaring</a>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestModule_ClientFetchNotCounted(t *testing.T) {
	h, tracker := newServer(t, &config.SiteConfig{})

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.Header.Set("X-Portal-Navigation", "1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if tracker.Hits("contact") != 0 {
		t.Errorf("Hits(contact) = %d, want 0", tracker.Hits("contact"))
	}
}

func TestModule_Bundle(t *testing.T) {
	h, _ := newServer(t, &config.SiteConfig{BaseURL: "/portal"})

	w := get(h, "/portal/dist/app.js", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := w.Body.String()
	checks := []struct {
		name string
		want string
	}{
		{"base stripped on segment boundary", "pathname.startsWith(`${base}/`)"},
		{"swap falls back to full load", "await swap(url.href);\n  } catch {\n    location.assign(url.href);"},
		{"manual scroll restoration", "history.scrollRestoration = 'manual'"},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(body, tt.want) {
				t.Errorf("bundle missing %q", tt.want)
			}
		})
	}
}

func TestModule_HeadNotCounted(t *testing.T) {
	h, tracker := newServer(t, &config.SiteConfig{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/governance", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if tracker.Hits("governance") != 0 {
		t.Errorf("Hits(governance) = %d, want 0", tracker.Hits("governance"))
	}
}

func TestModule_MethodNotAllowed(t *testing.T) {
	h, _ := newServer(t, &config.SiteConfig{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/about", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestNewModule_MissingView(t *testing.T) {
	table, err := routing.NewTable(routing.Config{},
		routing.RouteDefinition{Name: "blog", Path: "/blog", Page: "Blog"},
	)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	localizer, _ := locale.New(&locale.Config{Default: "en"})

	_, err = app.NewModule(app.Options{
		Table:     table,
		Tracker:   catalog.NewTracker(table),
		Localizer: localizer,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err == nil {
		t.Error("expected error for page without a view")
	}
}
