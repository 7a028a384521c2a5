package catalog

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/ern-portal/pkg/routing"
)

// ErrPathRequired is returned when a resolution request omits the path.
var ErrPathRequired = errors.New("path query parameter required")

// MapHTTPStatus maps routing and catalog errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, routing.ErrRouteNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrPathRequired) || errors.Is(err, routing.ErrInvalidRoute) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
