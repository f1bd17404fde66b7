// Package console serves the route registry over HTTP. It renders the view
// bound to each request path, exposes the route table as JSON, and owns
// the policy for paths no route claims.
package console

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/JaimeStill/proxy-console/internal/config"
	"github.com/JaimeStill/proxy-console/internal/views"
	"github.com/JaimeStill/proxy-console/pkg/handlers"
	"github.com/JaimeStill/proxy-console/pkg/lifecycle"
	"github.com/JaimeStill/proxy-console/pkg/module"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
	"github.com/JaimeStill/proxy-console/pkg/web"
)

// Console binds a Registry to HTTP.
type Console struct {
	cfg      *config.ConsoleConfig
	registry *navigation.Registry
	logger   *slog.Logger
	mounted  map[string]*atomic.Bool
}

// RouteDescriptor is the JSON form of a route.
type RouteDescriptor struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Href    string `json:"href"`
	Mounted bool   `json:"mounted"`
}

// New creates a Console over registry. Views are not mounted until the
// lifecycle hooks registered by Mount run.
func New(cfg *config.ConsoleConfig, registry *navigation.Registry, logger *slog.Logger) *Console {
	mounted := make(map[string]*atomic.Bool, registry.Len())
	for route := range registry.All() {
		mounted[route.Name] = new(atomic.Bool)
	}

	return &Console{
		cfg:      cfg,
		registry: registry,
		logger:   logger.With("system", "console"),
		mounted:  mounted,
	}
}

// Mount mounts every view in registry order at startup and unmounts them
// in reverse order at shutdown. A view that fails to mount stays
// registered but answers 503.
func (c *Console) Mount(lc *lifecycle.Coordinator) {
	lc.OnStartup(func() {
		for route := range c.registry.All() {
			if err := route.View.Mount(lc.Context()); err != nil {
				c.logger.Error("view mount failed", "route", route.Name, "error", err)
				continue
			}
			c.mounted[route.Name].Store(true)
			c.logger.Debug("view mounted", "route", route.Name, "path", route.Path)
		}
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()

		ctx := context.WithoutCancel(lc.Context())
		for _, route := range slices.Backward(c.registry.List()) {
			if !c.mounted[route.Name].Swap(false) {
				continue
			}
			if err := route.View.Unmount(ctx); err != nil {
				c.logger.Error("view unmount failed", "route", route.Name, "error", err)
			}
		}
		c.logger.Info("console views unmounted")
	})
}

// Ready reports whether every view mounted.
func (c *Console) Ready() bool {
	for _, m := range c.mounted {
		if !m.Load() {
			return false
		}
	}
	return true
}

// Module returns the console mounted at its configured base path.
func (c *Console) Module() *module.Module {
	return module.New(c.cfg.BasePath, c.Handler())
}

// Handler returns the console router. Paths are relative to the base path.
func (c *Console) Handler() http.Handler {
	r := web.NewRouter()

	r.HandleFunc("GET /go/{name}", c.navigate)
	r.HandleFunc("GET /api/routes", c.listRoutes)
	r.HandleFunc("GET /api/routes/{name}", c.getRoute)
	r.HandleFunc("GET /dist/", web.DistServer(views.Dist(), "dist", "/dist/"))
	r.SetFallback(c.page)

	return r
}

func (c *Console) page(w http.ResponseWriter, r *http.Request) {
	route, err := c.registry.ResolvePath(normalize(r.URL.Path))
	if err != nil {
		c.notFound(w, r, err)
		return
	}

	if !c.mounted[route.Name].Load() {
		c.logger.Warn("view not mounted", "route", route.Name)
		http.Error(w, "view unavailable", http.StatusServiceUnavailable)
		return
	}

	page := c.pageFor(r, route)

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if err := route.View.Render(w, r, page); err != nil {
			c.logger.Error("render failed", "route", route.Name, "error", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
		}
	case http.MethodPost:
		submitter, ok := route.View.(navigation.Submitter)
		if !ok {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := submitter.Submit(w, r, page); err != nil {
			c.logger.Warn("submit failed", "route", route.Name, "error", err)
			http.Error(w, "invalid submission", http.StatusBadRequest)
		}
	default:
		w.Header().Set("Allow", allowed(route))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *Console) navigate(w http.ResponseWriter, r *http.Request) {
	route, err := c.registry.ResolveName(r.PathValue("name"))
	if err != nil {
		c.notFound(w, r, err)
		return
	}
	http.Redirect(w, r, c.href(route), http.StatusSeeOther)
}

func (c *Console) listRoutes(w http.ResponseWriter, r *http.Request) {
	out := make([]RouteDescriptor, 0, c.registry.Len())
	for route := range c.registry.All() {
		out = append(out, c.describe(route))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}

func (c *Console) getRoute(w http.ResponseWriter, r *http.Request) {
	route, err := c.registry.ResolveName(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, r, c.logger, http.StatusNotFound, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, c.describe(route))
}

// notFound applies the configured policy to a path or name no route
// claims. Redirect sends the client to the root route.
func (c *Console) notFound(w http.ResponseWriter, r *http.Request, err error) {
	root, ok := c.registry.Root()

	if c.cfg.NotFound == config.NotFoundStatus || !ok {
		c.logger.Debug("route not found", "path", r.URL.Path, "error", err)
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	c.logger.Debug("route not found, redirecting to root", "path", r.URL.Path)
	http.Redirect(w, r, c.href(root), http.StatusFound)
}

func (c *Console) pageFor(r *http.Request, active navigation.Route) navigation.Page {
	page := navigation.Page{
		Active:   active,
		Routes:   c.registry.List(),
		BasePath: c.cfg.BasePath,
	}
	if cookie, err := r.Cookie(c.cfg.TokenCookie); err == nil {
		page.Token = cookie.Value
	}
	return page
}

func (c *Console) href(route navigation.Route) string {
	return navigation.Page{BasePath: c.cfg.BasePath}.Href(route)
}

func (c *Console) describe(route navigation.Route) RouteDescriptor {
	return RouteDescriptor{
		Name:    route.Name,
		Path:    route.Path,
		Title:   route.Title,
		Href:    c.href(route),
		Mounted: c.mounted[route.Name].Load(),
	}
}

// normalize maps a request path to the literal form routes are keyed by.
// The root path keeps its slash; other paths lose a trailing one.
func normalize(path string) string {
	if path == "" {
		return navigation.RootPath
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func allowed(route navigation.Route) string {
	if _, ok := route.View.(navigation.Submitter); ok {
		return "GET, HEAD, POST"
	}
	return "GET, HEAD"
}

