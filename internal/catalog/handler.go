package catalog

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/ern-portal/pkg/handlers"
	"github.com/JaimeStill/ern-portal/pkg/routes"
	"github.com/JaimeStill/ern-portal/pkg/routing"
)

type Handler struct {
	table   *routing.Table
	tracker *Tracker
	logger  *slog.Logger
}

func NewHandler(table *routing.Table, tracker *Tracker, logger *slog.Logger) *Handler {
	return &Handler{
		table:   table,
		tracker: tracker,
		logger:  logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/routes",
		Description: "Page route table and path resolution",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve},
			{Method: "GET", Pattern: "/{name}", Handler: h.Find},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	defs := h.table.Routes()
	result := make([]Route, len(defs))
	for i, def := range defs {
		result[i] = project(h.table, h.tracker, def)
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	def, err := h.table.Lookup(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), routing.ErrRouteNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, project(h.table, h.tracker, def))
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrPathRequired), ErrPathRequired)
		return
	}

	nav, err := h.table.Navigate(routing.NavigationRequest{TargetPath: path})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), routing.ErrRouteNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Resolution{
		Route:  project(h.table, h.tracker, nav.Route),
		Scroll: nav.Scroll,
	})
}
