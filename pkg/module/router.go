package module

import "net/http"

// Router dispatches requests to mounted modules and natively registered handlers.
type Router struct {
	mux  *http.ServeMux
	root *Module
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// HandleNative registers a handler directly on the underlying ServeMux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix. A root module receives every request
// that no other module or native handler claims.
func (r *Router) Mount(m *Module) {
	if m.Root() {
		r.root = m
		return
	}
	r.mux.HandleFunc(m.prefix, m.Serve)
	r.mux.HandleFunc(m.prefix+"/", m.Serve)
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.root != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.root.Serve(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
