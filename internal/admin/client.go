package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/proxy-console/internal/config"
)

// Admin API resource paths, relative to the configured base URL.
const (
	PathDirectors = "directors"
	PathCached    = "cacheds"
	PathStats     = "stats"
	PathFetching  = "fetchings"
)

// Client is a Source backed by the proxy admin HTTP API.
type Client struct {
	base        *url.URL
	tokenHeader string
	maxBody     int64
	http        *http.Client
	logger      *slog.Logger
}

// NewClient creates a Client from finalized upstream configuration.
func NewClient(cfg *config.UpstreamConfig, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse base_url: %w", err)
	}

	return &Client{
		base:        base,
		tokenHeader: cfg.TokenHeader,
		maxBody:     cfg.MaxResponseSizeBytes(),
		http:        &http.Client{Timeout: cfg.TimeoutDuration()},
		logger:      logger.With("system", "admin"),
	}, nil
}

// Directors returns the configured directors ordered by priority then name.
func (c *Client) Directors(ctx context.Context) ([]Director, error) {
	var directors []Director
	if err := c.get(ctx, PathDirectors, &directors); err != nil {
		return nil, err
	}
	SortDirectors(directors)
	return directors, nil
}

// Cached returns cache entries ordered by key.
func (c *Client) Cached(ctx context.Context) ([]CacheEntry, error) {
	var entries []CacheEntry
	if err := c.get(ctx, PathCached, &entries); err != nil {
		return nil, err
	}
	SortCached(entries)
	return entries, nil
}

// Performance returns the current runtime statistics.
func (c *Client) Performance(ctx context.Context) (Performance, error) {
	var perf Performance
	err := c.get(ctx, PathStats, &perf)
	return perf, err
}

// Fetching returns in-flight upstream fetches, oldest first.
func (c *Client) Fetching(ctx context.Context) ([]Fetch, error) {
	var fetches []Fetch
	if err := c.get(ctx, PathFetching, &fetches); err != nil {
		return nil, err
	}
	SortFetching(fetches)
	return fetches, nil
}

func (c *Client) get(ctx context.Context, resource string, out any) error {
	target := c.base.JoinPath(resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set(c.tokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstream, resource, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s: status %d", ErrUnauthorized, resource, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s: status %d", ErrUpstream, resource, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %v", ErrUpstream, resource, err)
	}
	if int64(len(body)) > c.maxBody {
		return fmt.Errorf("%w: %s: response exceeds %d bytes", ErrUpstream, resource, c.maxBody)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", ErrUpstream, resource, err)
	}

	c.logger.Debug("admin request", "resource", resource, "bytes", len(body))
	return nil
}

// New builds the Source selected by cfg.Mode.
func New(cfg *config.UpstreamConfig, logger *slog.Logger) (Source, error) {
	if cfg.Mode == config.UpstreamStatic {
		snapshot, err := LoadSnapshot(cfg.Snapshot)
		if err != nil {
			return nil, err
		}
		logger.Info("serving static admin snapshot", "path", cfg.Snapshot)
		return NewStatic(snapshot), nil
	}

	client, err := NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
