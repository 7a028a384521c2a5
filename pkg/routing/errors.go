package routing

import "errors"

var (
	// ErrRouteNotFound reports that no route matches a requested path or name.
	ErrRouteNotFound = errors.New("route not found")

	// ErrDuplicateRoute reports a table built with a repeated route name or path.
	ErrDuplicateRoute = errors.New("duplicate route definition")

	// ErrInvalidRoute reports a definition with an empty name or a malformed path.
	ErrInvalidRoute = errors.New("invalid route definition")
)
