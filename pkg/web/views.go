// Package web provides infrastructure for serving web pages with Go templates.
// It supports pre-parsed templates for zero per-request overhead and
// declarative view definitions for the single-page application shell.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a view with its name, template file, default title, and bundle name.
type ViewDef struct {
	Name     string
	Template string
	Title    string
	Bundle   string
}

// NavLink is a single entry in the rendered navigation menu.
type NavLink struct {
	Name   string
	Title  string
	Href   string
	Active bool
}

// PageData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
// State is the serialized InitialState handed to the client bundle.
type PageData struct {
	Title    string
	Lang     string
	Bundle   string
	BasePath string
	Nav      []NavLink
	State    template.JS
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
// Templates are parsed once at startup, avoiding per-request overhead.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layout templates once and clones them for each view.
// Any parse failure is returned so the caller can fail at startup.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		templates[v.Template] = t
	}

	return &TemplateSet{
		views:    templates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in rendered PageData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Has reports whether the view template was parsed into the set.
func (ts *TemplateSet) Has(view string) bool {
	_, ok := ts.views[view]
	return ok
}

// Render executes the named layout for view and writes it with status.
// Output is buffered so a template error never produces a partial page.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, view string, data PageData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("template not found: %s", view)
	}

	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
