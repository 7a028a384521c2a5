package api

import (
	"net/http"

	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/internal/navigations"
	"github.com/JaimeStill/ern-portal/pkg/routes"
)

func buildRoutes(runtime *Runtime, domain *Domain) http.Handler {
	catalogHandler := catalog.NewHandler(runtime.Table, runtime.Tracker, runtime.Logger)
	navigationsHandler := navigations.NewHandler(domain.Navigations, runtime.Logger, runtime.Pagination)

	sys := routes.New(runtime.Logger)
	sys.RegisterGroup(catalogHandler.Routes())
	sys.RegisterGroup(navigationsHandler.Routes())
	return sys.Build()
}
