package admin

import (
	"slices"
	"strings"
)

// SortDirectors orders directors by priority, then name.
func SortDirectors(directors []Director) {
	slices.SortStableFunc(directors, func(a, b Director) int {
		if a.Priority != b.Priority {
			return a.Priority - b.Priority
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// SortCached orders cache entries by key.
func SortCached(entries []CacheEntry) {
	slices.SortFunc(entries, func(a, b CacheEntry) int {
		return strings.Compare(a.Key, b.Key)
	})
}

// SortFetching orders in-flight fetches oldest first.
func SortFetching(fetches []Fetch) {
	slices.SortStableFunc(fetches, func(a, b Fetch) int {
		return a.StartedAt.Compare(b.StartedAt)
	})
}
