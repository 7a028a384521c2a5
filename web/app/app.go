// Package app provides the web application module with embedded templates and assets.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/pkg/locale"
	"github.com/JaimeStill/ern-portal/pkg/module"
	"github.com/JaimeStill/ern-portal/pkg/routing"
	"github.com/JaimeStill/ern-portal/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

// navigationHeader marks page fetches issued by the client bundle after it
// has already recorded the navigation through the API.
const navigationHeader = "X-Portal-Navigation"

var publicFiles = []string{
	"favicon.svg",
	"robots.txt",
	"site.webmanifest",
}

var views = map[routing.PageID]web.ViewDef{
	catalog.PageHome:          {Name: "home", Template: "home.html", Title: "Home", Bundle: "app"},
	catalog.PageAbout:         {Name: "about", Template: "about.html", Title: "About", Bundle: "app"},
	catalog.PageContact:       {Name: "contact", Template: "contact.html", Title: "Contact", Bundle: "app"},
	catalog.PageGovernance:    {Name: "governance", Template: "governance.html", Title: "Governance", Bundle: "app"},
	catalog.PageDocuments:     {Name: "documents", Template: "documents.html", Title: "Documents", Bundle: "app"},
	catalog.PageDashboard:     {Name: "dashboard", Template: "dashboard.html", Title: "Dashboard", Bundle: "app"},
	catalog.PageDisclaimer:    {Name: "disclaimer", Template: "disclaimer.html", Title: "Disclaimer", Bundle: "app"},
	catalog.PagePrivacyPolicy: {Name: "privacy", Template: "privacy.html", Title: "Privacy Policy", Bundle: "app"},
	catalog.PageMembersArea:   {Name: "members", Template: "members.html", Title: "Members Area", Bundle: "app"},
}

var notFoundView = web.ViewDef{Name: "not_found", Template: "404.html", Title: "Page Not Found", Bundle: "app"}

// Options configures the app module.
type Options struct {
	Table     *routing.Table
	Tracker   *catalog.Tracker
	Localizer *locale.Localizer
	APIBase   string
	Logger    *slog.Logger
}

type handler struct {
	opts      Options
	templates *web.TemplateSet
	logger    *slog.Logger
}

// NewModule creates the app module mounted at the route table's base URL.
// Every page in the table must have a view.
func NewModule(opts Options) (*module.Module, error) {
	base := opts.Table.BaseURL()
	if strings.Count(base, "/") != 1 {
		return nil, fmt.Errorf("base url %q must be a single path segment", base)
	}

	defs := []web.ViewDef{notFoundView}
	for _, route := range opts.Table.Routes() {
		view, ok := views[route.Page]
		if !ok {
			return nil, fmt.Errorf("no view for page %s (route %s)", route.Page, route.Name)
		}
		defs = append(defs, view)
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		strings.TrimSuffix(base, "/"),
		defs,
	)
	if err != nil {
		return nil, err
	}

	h := &handler{
		opts:      opts,
		templates: ts,
		logger:    opts.Logger.With("module", "app"),
	}

	return module.New(base, h.router()), nil
}

func (h *handler) router() http.Handler {
	r := web.NewRouter()
	r.SetFallback(h.page)

	r.Handle("GET /dist/", web.DistServer(distFS))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	accept := r.Header.Get("Accept-Language")

	req := routing.NavigationRequest{TargetPath: r.URL.Path}
	nav, err := h.opts.Table.Navigate(req)
	if err != nil {
		h.render(w, http.StatusNotFound, notFoundView, accept, web.InitialState{
			BaseURL: h.opts.Table.BaseURL(),
			APIBase: h.opts.APIBase,
			Scroll:  routing.ScrollTarget(req),
		}, "")
		return
	}

	if r.Method == http.MethodGet && r.Header.Get(navigationHeader) == "" {
		h.opts.Tracker.Record(nav.Route.Name)
	}

	h.render(w, http.StatusOK, views[nav.Route.Page], accept, web.InitialState{
		BaseURL: h.opts.Table.BaseURL(),
		APIBase: h.opts.APIBase,
		Route:   &nav.Route,
		Scroll:  nav.Scroll,
	}, nav.Route.Name)
}

func (h *handler) render(w http.ResponseWriter, status int, view web.ViewDef, accept string, state web.InitialState, active string) {
	js, err := state.JS()
	if err != nil {
		h.logger.Error("encode initial state", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := web.PageData{
		Title:  h.title(accept, view),
		Lang:   h.opts.Localizer.Lang(accept),
		Bundle: view.Bundle,
		Nav:    h.nav(accept, active),
		State:  js,
	}

	if err := h.templates.Render(w, status, layout, view.Template, data); err != nil {
		h.logger.Error("render view", "view", view.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *handler) title(accept string, view web.ViewDef) string {
	return h.opts.Localizer.Title(accept, view.Name+"_title", view.Title)
}

func (h *handler) nav(accept, active string) []web.NavLink {
	routes := h.opts.Table.Routes()
	links := make([]web.NavLink, 0, len(routes))
	for _, route := range routes {
		href, _ := h.opts.Table.Href(route.Name)
		links = append(links, web.NavLink{
			Name:   route.Name,
			Title:  h.title(accept, views[route.Page]),
			Href:   href,
			Active: route.Name == active,
		})
	}
	return links
}
