// Package admin reads the state of a caching proxy through its admin API.
// Views consume the Source interface; Client talks HTTP to a running proxy
// and Static serves a fixed snapshot.
package admin

import (
	"context"
	"time"
)

// Source provides the data shown by the console views.
type Source interface {
	Directors(ctx context.Context) ([]Director, error)
	Cached(ctx context.Context) ([]CacheEntry, error)
	Performance(ctx context.Context) (Performance, error)
	Fetching(ctx context.Context) ([]Fetch, error)
}

// Director routes matching requests to a pool of upstream backends.
type Director struct {
	Name              string   `json:"name"`
	Policy            string   `json:"policy"`
	Ping              string   `json:"ping"`
	Prefixes          []string `json:"prefixes"`
	Hosts             []string `json:"hosts"`
	Rewrites          []string `json:"rewrites"`
	Backends          []string `json:"backends"`
	AvailableBackends []string `json:"availableBackends"`
	Priority          int      `json:"priority"`
}

// Healthy reports whether every configured backend is available.
func (d Director) Healthy() bool {
	return len(d.AvailableBackends) == len(d.Backends)
}

// CacheEntry is one response held in the proxy cache.
type CacheEntry struct {
	Key       string    `json:"key"`
	Status    string    `json:"status"`
	TTL       int       `json:"ttl"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExpiresAt returns when the entry leaves the cache.
func (e CacheEntry) ExpiresAt() time.Time {
	return e.CreatedAt.Add(time.Duration(e.TTL) * time.Second)
}

// Performance is a point-in-time snapshot of proxy runtime statistics.
type Performance struct {
	Concurrency  int64          `json:"concurrency"`
	RequestCount int64          `json:"requestCount"`
	Goroutines   int            `json:"goroutine"`
	HeapAlloc    int64          `json:"heapAlloc"`
	HeapSys      int64          `json:"heapSys"`
	CacheCount   int            `json:"cacheCount"`
	Status       map[string]int `json:"status"`
	StartedAt    time.Time      `json:"startedAt"`
}

// Uptime returns the time elapsed since StartedAt relative to now.
func (p Performance) Uptime(now time.Time) time.Duration {
	if p.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(p.StartedAt)
}

// Fetch is an upstream request the proxy is currently waiting on.
type Fetch struct {
	Key       string    `json:"key"`
	StartedAt time.Time `json:"startedAt"`
}

type tokenKey struct{}

// WithToken returns a context carrying the admin token sent upstream.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the admin token stored by WithToken.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
