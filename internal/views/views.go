// Package views implements the console pages. Every view reads proxy state
// from an admin.Source and renders through one shared template set.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JaimeStill/proxy-console/internal/admin"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
	"github.com/JaimeStill/proxy-console/pkg/pagination"
	"github.com/JaimeStill/proxy-console/pkg/web"
	"github.com/docker/go-units"
)

//go:embed templates/layouts/*.html templates/pages/*.html
var templateFS embed.FS

//go:embed dist/*
var distFS embed.FS

const layout = "console.html"

var pages = []string{
	"token.html",
	"director.html",
	"cached.html",
	"performance.html",
	"fetching.html",
}

// Dist returns the embedded static assets rooted at "dist".
func Dist() fs.FS {
	return distFS
}

// Options configures a Set. A zero Pagination takes the package defaults.
type Options struct {
	TokenCookie string
	Pagination  pagination.Config
	Now         func() time.Time
}

// Set holds the console views.
type Set struct {
	Token       *Token
	Director    *Director
	Cached      *Cached
	Performance *Performance
	Fetching    *Fetching
}

// New parses the console templates and builds every view over src.
func New(src admin.Source, opts Options, logger *slog.Logger) (*Set, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Pagination == (pagination.Config{}) {
		if err := opts.Pagination.Finalize(nil); err != nil {
			return nil, fmt.Errorf("views: %w", err)
		}
	}

	templates, err := web.NewTemplateSet(
		templateFS,
		"templates/layouts/*.html",
		"templates/pages",
		funcs(opts.Now),
		pages...,
	)
	if err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}

	logger = logger.With("system", "views")
	newBase := func(page string) base {
		return base{page: page, templates: templates, logger: logger}
	}

	return &Set{
		Token:       &Token{base: newBase("token.html"), cookie: opts.TokenCookie},
		Director:    &Director{base: newBase("director.html"), src: src},
		Cached:      &Cached{base: newBase("cached.html"), src: src, pages: opts.Pagination},
		Performance: &Performance{base: newBase("performance.html"), src: src, now: opts.Now},
		Fetching:    &Fetching{base: newBase("fetching.html"), src: src, now: opts.Now},
	}, nil
}

func funcs(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"size": func(n int64) string {
			return units.HumanSize(float64(n))
		},
		"bytes": func(n int64) string {
			return units.BytesSize(float64(n))
		},
		"duration": units.HumanDuration,
		"since": func(t time.Time) string {
			return units.HumanDuration(now().Sub(t))
		},
		"timestamp": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.UTC().Format(time.RFC3339)
		},
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
		"sub":  func(a, b int) int { return a - b },
	}
}

// base carries what every view shares: its page template and the
// mount/unmount bookkeeping.
type base struct {
	page      string
	templates *web.TemplateSet
	logger    *slog.Logger
}

// Mount verifies the page template is available.
func (b *base) Mount(ctx context.Context) error {
	if !b.templates.Has(b.page) {
		return fmt.Errorf("views: template %s not parsed", b.page)
	}
	return ctx.Err()
}

// Unmount releases nothing; views hold no per-mount resources.
func (b *base) Unmount(ctx context.Context) error {
	return nil
}

// render writes the page. A non-nil fetchErr renders the error banner
// with the status admin.MapHTTPStatus assigns to it.
func (b *base) render(w http.ResponseWriter, page navigation.Page, data any, fetchErr error) error {
	status := http.StatusOK
	vd := viewData(page, data)

	if fetchErr != nil {
		status = admin.MapHTTPStatus(fetchErr)
		vd.Error = fetchErr.Error()
		b.logger.Warn("admin data unavailable",
			"view", page.Active.Name,
			"status", status,
			"error", fetchErr,
		)
	}

	return b.templates.Render(w, status, layout, b.page, vd)
}

func viewData(page navigation.Page, data any) web.ViewData {
	nav := make([]web.NavItem, 0, len(page.Routes))
	for _, route := range page.Routes {
		nav = append(nav, web.NavItem{
			Name:   route.Name,
			Title:  route.Title,
			Href:   page.Href(route),
			Active: route.Name == page.Active.Name,
		})
	}

	return web.ViewData{
		Title:    page.Active.Title,
		BasePath: page.BasePath,
		Nav:      nav,
		Data:     data,
	}
}

func tokenContext(r *http.Request, page navigation.Page) context.Context {
	return admin.WithToken(r.Context(), page.Token)
}
