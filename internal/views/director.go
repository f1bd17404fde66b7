package views

import (
	"net/http"

	"github.com/JaimeStill/proxy-console/internal/admin"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

// Director lists the proxy directors and their backend health.
type Director struct {
	base
	src admin.Source
}

// Render fetches directors and renders them.
func (v *Director) Render(w http.ResponseWriter, r *http.Request, page navigation.Page) error {
	directors, err := v.src.Directors(tokenContext(r, page))
	return v.render(w, page, directors, err)
}
