package views

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/proxy-console/internal/admin"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
	"github.com/JaimeStill/proxy-console/pkg/pagination"
)

// Cached lists the responses held in the proxy cache, one page at a time.
// The search query parameter narrows entries by key substring.
type Cached struct {
	base
	src   admin.Source
	pages pagination.Config
}

type cachedData struct {
	Request   pagination.PageRequest
	Result    pagination.PageResult[admin.CacheEntry]
	TotalSize int64 // of the entries matching the search
}

// Render fetches cache entries and renders the requested page.
func (v *Cached) Render(w http.ResponseWriter, r *http.Request, page navigation.Page) error {
	entries, err := v.src.Cached(tokenContext(r, page))

	req := pagination.PageRequestFromQuery(r.URL.Query(), v.pages)
	matched := pagination.Filter(entries, req.Search, matchKey)

	data := cachedData{
		Request: req,
		Result:  pagination.Apply(matched, req, nil),
	}
	for _, e := range matched {
		data.TotalSize += e.Size
	}
	return v.render(w, page, data, err)
}

func matchKey(e admin.CacheEntry, search string) bool {
	return strings.Contains(strings.ToLower(e.Key), strings.ToLower(search))
}
