// Package catalog holds the portal's page routes and serves them over the API.
package catalog

import (
	"fmt"

	"github.com/JaimeStill/ern-portal/internal/config"
	"github.com/JaimeStill/ern-portal/pkg/routing"
)

// Page identifiers rendered by the web application.
const (
	PageHome          routing.PageID = "Home"
	PageAbout         routing.PageID = "About"
	PageContact       routing.PageID = "Contact"
	PageGovernance    routing.PageID = "Governance"
	PageDocuments     routing.PageID = "Documents"
	PageDashboard     routing.PageID = "Dashboard"
	PageDisclaimer    routing.PageID = "Disclaimer"
	PagePrivacyPolicy routing.PageID = "PrivacyPolicy"
	PageMembersArea   routing.PageID = "MembersArea"
)

// Definitions returns every portal route in menu order.
func Definitions() []routing.RouteDefinition {
	return []routing.RouteDefinition{
		{Name: "home", Path: "/", Page: PageHome},
		{Name: "about", Path: "/about", Page: PageAbout},
		{Name: "contact", Path: "/contact", Page: PageContact},
		{Name: "governance", Path: "/governance", Page: PageGovernance},
		{Name: "documents", Path: "/documents", Page: PageDocuments},
		{Name: "dashboard", Path: "/dashboard", Page: PageDashboard},
		{Name: "disclaimer", Path: "/disclaimer", Page: PageDisclaimer},
		{Name: "privacy", Path: "/privacy", Page: PagePrivacyPolicy},
		{Name: "members", Path: "/members-area", Page: PageMembersArea},
	}
}

// New builds the route table for cfg. When cfg.Pages is set only those
// routes are kept; an unknown page name fails with routing.ErrRouteNotFound.
func New(cfg *config.SiteConfig) (*routing.Table, error) {
	table, err := routing.NewTable(cfg.Routing(), Definitions()...)
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}

	if len(cfg.Pages) == 0 {
		return table, nil
	}

	selected, err := table.Select(cfg.Pages...)
	if err != nil {
		return nil, fmt.Errorf("select pages: %w", err)
	}
	return selected, nil
}
