package views

import (
	"net/http"
	"slices"
	"time"

	"github.com/JaimeStill/proxy-console/internal/admin"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

// Performance shows proxy runtime statistics.
type Performance struct {
	base
	src admin.Source
	now func() time.Time
}

type statusCount struct {
	Code  string
	Count int
}

type performanceData struct {
	Stats    admin.Performance
	Uptime   time.Duration
	Statuses []statusCount
}

// Render fetches runtime statistics and renders them.
func (v *Performance) Render(w http.ResponseWriter, r *http.Request, page navigation.Page) error {
	stats, err := v.src.Performance(tokenContext(r, page))

	data := performanceData{
		Stats:  stats,
		Uptime: stats.Uptime(v.now()),
	}
	for code, count := range stats.Status {
		data.Statuses = append(data.Statuses, statusCount{Code: code, Count: count})
	}
	slices.SortFunc(data.Statuses, func(a, b statusCount) int {
		switch {
		case a.Code < b.Code:
			return -1
		case a.Code > b.Code:
			return 1
		}
		return 0
	})

	return v.render(w, page, data, err)
}
