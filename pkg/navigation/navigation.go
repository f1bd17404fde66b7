// Package navigation provides an immutable registry of named page routes.
// A Registry binds literal URL paths to views and resolves them by path or
// by name. It is built once at startup and is safe for concurrent readers.
package navigation

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strings"
)

// RootPath is the path bound by the default route.
const RootPath = "/"

// View is a renderable page bound to a route. Mount and Unmount bracket
// the period during which the view may be rendered; Render is called once
// per activation and must be safe for concurrent use.
type View interface {
	Mount(ctx context.Context) error
	Render(w http.ResponseWriter, r *http.Request, page Page) error
	Unmount(ctx context.Context) error
}

// Submitter is implemented by views that accept form submissions on
// their route path.
type Submitter interface {
	Submit(w http.ResponseWriter, r *http.Request, page Page) error
}

// Route binds a unique name and literal path to a view.
type Route struct {
	Name  string
	Path  string
	Title string
	View  View
}

// Page carries navigation state to a view while it renders.
type Page struct {
	Active   Route
	Routes   []Route
	BasePath string
	Token    string
}

// Href returns the path of route prefixed with the page base path.
func (p Page) Href(route Route) string {
	if route.Path == RootPath {
		if p.BasePath == "" {
			return RootPath
		}
		return p.BasePath + "/"
	}
	return p.BasePath + route.Path
}

// Registry is an ordered, immutable set of routes.
type Registry struct {
	routes []Route
	byName map[string]int
	byPath map[string]int
}

// New validates routes and builds a Registry. Names and paths must be
// unique, paths must begin with "/", and every route needs a view.
func New(routes ...Route) (*Registry, error) {
	r := &Registry{
		routes: make([]Route, 0, len(routes)),
		byName: make(map[string]int, len(routes)),
		byPath: make(map[string]int, len(routes)),
	}

	for i, route := range routes {
		if err := validate(route); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		if _, exists := r.byName[route.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, route.Name)
		}
		if prev, exists := r.byPath[route.Path]; exists {
			return nil, fmt.Errorf("%w: %q (%s, %s)", ErrDuplicatePath, route.Path, r.routes[prev].Name, route.Name)
		}

		r.byName[route.Name] = len(r.routes)
		r.byPath[route.Path] = len(r.routes)
		r.routes = append(r.routes, route)
	}

	return r, nil
}

// MustNew is like New but panics on an invalid route table.
func MustNew(routes ...Route) *Registry {
	r, err := New(routes...)
	if err != nil {
		panic(err)
	}
	return r
}

// ResolvePath returns the route bound to the literal path.
func (r *Registry) ResolvePath(path string) (Route, error) {
	if i, ok := r.byPath[path]; ok {
		return r.routes[i], nil
	}
	return Route{}, fmt.Errorf("%w: path %q", ErrRouteNotFound, path)
}

// ResolveName returns the route registered under name.
func (r *Registry) ResolveName(name string) (Route, error) {
	if i, ok := r.byName[name]; ok {
		return r.routes[i], nil
	}
	return Route{}, fmt.Errorf("%w: name %q", ErrRouteNotFound, name)
}

// Root returns the route bound to RootPath, if any.
func (r *Registry) Root() (Route, bool) {
	route, err := r.ResolvePath(RootPath)
	return route, err == nil
}

// List returns a copy of all routes in registration order.
func (r *Registry) List() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// All iterates routes in registration order.
func (r *Registry) All() iter.Seq[Route] {
	return func(yield func(Route) bool) {
		for _, route := range r.routes {
			if !yield(route) {
				return
			}
		}
	}
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	return len(r.routes)
}

func validate(route Route) error {
	if strings.TrimSpace(route.Name) == "" {
		return ErrInvalidName
	}
	if !strings.HasPrefix(route.Path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, route.Path)
	}
	if route.View == nil {
		return fmt.Errorf("%w: %q", ErrNilView, route.Name)
	}
	return nil
}
