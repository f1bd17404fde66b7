package console

import (
	"github.com/JaimeStill/proxy-console/internal/views"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

// Routes returns the console route table in menu order. The director
// view answers the root path. Missing views in v surface as
// navigation.ErrNilView when the table is passed to navigation.New.
func Routes(v *views.Set) []navigation.Route {
	if v == nil {
		v = &views.Set{}
	}
	return []navigation.Route{
		{Name: "token", Path: "/token", Title: "Token", View: view(v.Token)},
		{Name: "director", Path: navigation.RootPath, Title: "Director", View: view(v.Director)},
		{Name: "cached", Path: "/cached", Title: "Cached", View: view(v.Cached)},
		{Name: "performance", Path: "/performance", Title: "Performance", View: view(v.Performance)},
		{Name: "fetching", Path: "/fetching", Title: "Fetching", View: view(v.Fetching)},
	}
}

// view keeps a nil view pointer from becoming a non-nil interface.
func view[P interface {
	*E
	navigation.View
}, E any](p P) navigation.View {
	if p == nil {
		return nil
	}
	return p
}
