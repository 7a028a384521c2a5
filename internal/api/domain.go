package api

import "github.com/JaimeStill/ern-portal/internal/navigations"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Navigations navigations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Navigations: navigations.New(
			runtime.Database.Connection(),
			runtime.Table,
			runtime.Tracker,
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
