package navigation_test

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"testing"

	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

type stubView struct{ name string }

func (v *stubView) Mount(ctx context.Context) error   { return nil }
func (v *stubView) Unmount(ctx context.Context) error { return nil }
func (v *stubView) Render(w http.ResponseWriter, r *http.Request, page navigation.Page) error {
	_, err := w.Write([]byte(v.name))
	return err
}

func testRoutes() []navigation.Route {
	return []navigation.Route{
		{Name: "token", Path: "/token", View: &stubView{"token"}},
		{Name: "director", Path: "/", View: &stubView{"director"}},
		{Name: "cached", Path: "/cached", View: &stubView{"cached"}},
		{Name: "performance", Path: "/performance", View: &stubView{"performance"}},
		{Name: "fetching", Path: "/fetching", View: &stubView{"fetching"}},
	}
}

func TestNew(t *testing.T) {
	r, err := navigation.New(testRoutes()...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
}

func TestNew_Empty(t *testing.T) {
	r, err := navigation.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(r.List()) != 0 {
		t.Errorf("List() len = %d, want 0", len(r.List()))
	}
	if _, ok := r.Root(); ok {
		t.Error("Root() ok = true for empty registry")
	}
}

func TestNew_Invalid(t *testing.T) {
	view := &stubView{"x"}

	tests := []struct {
		name   string
		routes []navigation.Route
		want   error
	}{
		{
			"duplicate root path",
			[]navigation.Route{
				{Name: "director", Path: "/", View: view},
				{Name: "home", Path: "/", View: view},
			},
			navigation.ErrDuplicatePath,
		},
		{
			"duplicate name",
			[]navigation.Route{
				{Name: "cached", Path: "/cached", View: view},
				{Name: "cached", Path: "/cache", View: view},
			},
			navigation.ErrDuplicateName,
		},
		{
			"empty name",
			[]navigation.Route{{Name: "", Path: "/x", View: view}},
			navigation.ErrInvalidName,
		},
		{
			"empty path",
			[]navigation.Route{{Name: "x", Path: "", View: view}},
			navigation.ErrInvalidPath,
		},
		{
			"relative path",
			[]navigation.Route{{Name: "x", Path: "cached", View: view}},
			navigation.ErrInvalidPath,
		},
		{
			"nil view",
			[]navigation.Route{{Name: "x", Path: "/x"}},
			navigation.ErrNilView,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := navigation.New(tt.routes...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if r != nil {
				t.Error("New() returned registry alongside error")
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNew() with duplicate path did not panic")
		}
	}()

	view := &stubView{"x"}
	navigation.MustNew(
		navigation.Route{Name: "a", Path: "/", View: view},
		navigation.Route{Name: "b", Path: "/", View: view},
	)
}

func TestResolvePath_RoundTrip(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	for _, want := range r.List() {
		got, err := r.ResolvePath(want.Path)
		if err != nil {
			t.Fatalf("ResolvePath(%q) error = %v", want.Path, err)
		}
		if got != want {
			t.Errorf("ResolvePath(%q) = %+v, want %+v", want.Path, got, want)
		}
	}
}

func TestResolveName_RoundTrip(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	for _, want := range r.List() {
		got, err := r.ResolveName(want.Name)
		if err != nil {
			t.Fatalf("ResolveName(%q) error = %v", want.Name, err)
		}
		if got != want {
			t.Errorf("ResolveName(%q) = %+v, want %+v", want.Name, got, want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	tests := []struct {
		path     string
		wantName string
		wantErr  bool
	}{
		{"/", "director", false},
		{"/cached", "cached", false},
		{"/token", "token", false},
		{"/missing", "", true},
		{"", "", true},
		{"/cached/", "", true},
		{"cached", "", true},
		{"/CACHED", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := r.ResolvePath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, navigation.ErrRouteNotFound) {
					t.Fatalf("ResolvePath(%q) error = %v, want ErrRouteNotFound", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePath(%q) error = %v", tt.path, err)
			}
			if got.Name != tt.wantName {
				t.Errorf("ResolvePath(%q).Name = %q, want %q", tt.path, got.Name, tt.wantName)
			}
		})
	}
}

func TestResolveName_NotFound(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	for _, name := range []string{"", "missing", "/", "Token"} {
		if _, err := r.ResolveName(name); !errors.Is(err, navigation.ErrRouteNotFound) {
			t.Errorf("ResolveName(%q) error = %v, want ErrRouteNotFound", name, err)
		}
	}
}

func TestList_Order(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	wantNames := []string{"token", "director", "cached", "performance", "fetching"}
	wantPaths := []string{"/token", "/", "/cached", "/performance", "/fetching"}

	routes := r.List()
	if len(routes) != len(wantNames) {
		t.Fatalf("List() len = %d, want %d", len(routes), len(wantNames))
	}

	for i, route := range routes {
		if route.Name != wantNames[i] {
			t.Errorf("List()[%d].Name = %q, want %q", i, route.Name, wantNames[i])
		}
		if route.Path != wantPaths[i] {
			t.Errorf("List()[%d].Path = %q, want %q", i, route.Path, wantPaths[i])
		}
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	routes := r.List()
	routes[0].Name = "mutated"

	got, err := r.ResolvePath("/token")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if got.Name != "token" {
		t.Errorf("registry mutated through List(): Name = %q", got.Name)
	}
}

func TestIdempotence(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	first := r.List()
	for range 3 {
		if !slices.Equal(first, r.List()) {
			t.Fatal("List() results differ between calls")
		}
		a, _ := r.ResolvePath("/cached")
		b, _ := r.ResolveName("cached")
		if a != b {
			t.Fatalf("ResolvePath and ResolveName disagree: %+v vs %+v", a, b)
		}
	}
}

func TestAll_Restartable(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	for pass := range 2 {
		var names []string
		for route := range r.All() {
			names = append(names, route.Name)
		}
		if len(names) != 5 {
			t.Errorf("pass %d: All() yielded %d routes, want 5", pass, len(names))
		}
	}

	count := 0
	for range r.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("All() did not stop on break, count = %d", count)
	}
}

func TestRoot(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	root, ok := r.Root()
	if !ok {
		t.Fatal("Root() ok = false")
	}
	if root.Name != "director" {
		t.Errorf("Root().Name = %q, want director", root.Name)
	}
}

func TestConcurrentReads(t *testing.T) {
	r := navigation.MustNew(testRoutes()...)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				for _, route := range r.List() {
					if _, err := r.ResolvePath(route.Path); err != nil {
						t.Errorf("ResolvePath(%q) error = %v", route.Path, err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestPage_Href(t *testing.T) {
	root := navigation.Route{Name: "director", Path: "/"}
	cached := navigation.Route{Name: "cached", Path: "/cached"}

	tests := []struct {
		name     string
		basePath string
		route    navigation.Route
		want     string
	}{
		{"root no base", "", root, "/"},
		{"root with base", "/console", root, "/console/"},
		{"page no base", "", cached, "/cached"},
		{"page with base", "/console", cached, "/console/cached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := navigation.Page{BasePath: tt.basePath}
			if got := page.Href(tt.route); got != tt.want {
				t.Errorf("Href() = %q, want %q", got, tt.want)
			}
		})
	}
}
