// Package middleware provides composable HTTP middleware and a System for ordering them.
package middleware

import "net/http"

// System collects middleware and applies them around a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type chain struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware System.
func New() System {
	return &chain{stack: []func(http.Handler) http.Handler{}}
}

// Use appends mw. The first registered middleware is the outermost.
func (c *chain) Use(mw func(http.Handler) http.Handler) {
	c.stack = append(c.stack, mw)
}

// Apply wraps handler with every registered middleware.
func (c *chain) Apply(handler http.Handler) http.Handler {
	for i := len(c.stack) - 1; i >= 0; i-- {
		handler = c.stack[i](handler)
	}
	return handler
}
