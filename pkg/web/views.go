// Package web provides server-rendered page infrastructure: pre-parsed
// template sets, a fallback-aware router, and embedded static file helpers.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// NavItem is one entry of the navigation menu rendered by layouts.
type NavItem struct {
	Name   string
	Title  string
	Href   string
	Active bool
}

// ViewData is passed to layout and page templates.
type ViewData struct {
	Title    string
	BasePath string
	Nav      []NavItem
	Error    string
	Data     any
}

// TemplateSet holds one template tree per page, each cloned from the
// shared layouts. Templates are parsed once at construction.
type TemplateSet struct {
	pages map[string]*template.Template
}

// NewTemplateSet parses layouts matching layoutGlob in fsys, then clones
// them once for each page template found under pageDir.
func NewTemplateSet(fsys fs.FS, layoutGlob, pageDir string, funcs template.FuncMap, pages ...string) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageFS, err := fs.Sub(fsys, pageDir)
	if err != nil {
		return nil, fmt.Errorf("page dir %s: %w", pageDir, err)
	}

	set := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", page, err)
		}
		if _, err := t.ParseFS(pageFS, page); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		set[page] = t
	}

	return &TemplateSet{pages: set}, nil
}

// Has reports whether page was parsed into the set.
func (ts *TemplateSet) Has(page string) bool {
	_, ok := ts.pages[page]
	return ok
}

// Execute renders layout for page into w without touching headers.
func (ts *TemplateSet) Execute(w io.Writer, layout, page string, data ViewData) error {
	t, ok := ts.pages[page]
	if !ok {
		return fmt.Errorf("template not found: %s", page)
	}
	return t.ExecuteTemplate(w, layout, data)
}

// Render writes layout for page as an HTML response with status.
// Output is buffered so a template failure does not leave a partial page.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, page string, data ViewData) error {
	var buf bytes.Buffer
	if err := ts.Execute(&buf, layout, page, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
