package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"

	"github.com/JaimeStill/ern-portal/pkg/routes"
)

// DistServer returns a handler that serves bundled assets from fsys.
// Request paths are looked up relative to the root of fsys, so an embed.FS
// declared with dist/* serves /dist/app.js directly.
func DistServer(fsys fs.FS) http.Handler {
	return http.FileServer(http.FS(fsys))
}

// ServeEmbeddedFile writes the file at name from fsys with a Content-Type
// derived from its extension. A missing file responds 404.
func ServeEmbeddedFile(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// PublicFile returns a handler serving a single file from dir within fsys.
func PublicFile(fsys fs.FS, dir, name string) http.HandlerFunc {
	full := path.Join(dir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		ServeEmbeddedFile(w, r, fsys, full)
	}
}

// PublicFileRoutes builds GET routes exposing each named file at the root path.
func PublicFileRoutes(fsys fs.FS, dir string, files ...string) []routes.Route {
	out := make([]routes.Route, len(files))
	for i, name := range files {
		out[i] = routes.Route{
			Method:  "GET",
			Pattern: "/" + name,
			Handler: PublicFile(fsys, dir, name),
		}
	}
	return out
}
