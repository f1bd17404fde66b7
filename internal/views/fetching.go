package views

import (
	"net/http"
	"time"

	"github.com/JaimeStill/proxy-console/internal/admin"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

// Fetching lists upstream requests the proxy is waiting on.
type Fetching struct {
	base
	src admin.Source
	now func() time.Time
}

type fetchRow struct {
	Key       string
	StartedAt time.Time
	Elapsed   time.Duration
}

// Render fetches in-flight requests and renders them with elapsed time.
func (v *Fetching) Render(w http.ResponseWriter, r *http.Request, page navigation.Page) error {
	fetches, err := v.src.Fetching(tokenContext(r, page))

	now := v.now()
	rows := make([]fetchRow, 0, len(fetches))
	for _, f := range fetches {
		rows = append(rows, fetchRow{
			Key:       f.Key,
			StartedAt: f.StartedAt,
			Elapsed:   now.Sub(f.StartedAt),
		})
	}
	return v.render(w, page, rows, err)
}
