package navigations

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/ern-portal/pkg/routing"
)

// Domain errors for navigation operations.
var (
	ErrNotFound      = errors.New("navigation not found")
	ErrDuplicate     = errors.New("navigation already recorded")
	ErrInvalidTarget = errors.New("target_path must be an absolute path")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, routing.ErrRouteNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidTarget) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
