package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Snapshot is a complete copy of the admin API state.
type Snapshot struct {
	Directors   []Director   `json:"directors"`
	Cached      []CacheEntry `json:"cacheds"`
	Performance Performance  `json:"stats"`
	Fetching    []Fetch      `json:"fetchings"`
}

// Static is a Source serving a fixed Snapshot. It ignores the admin token.
type Static struct {
	snapshot Snapshot
}

// NewStatic creates a Source that always returns snapshot, ordered the
// same way as Client results.
func NewStatic(snapshot Snapshot) *Static {
	snapshot.Directors = slices.Clone(snapshot.Directors)
	snapshot.Cached = slices.Clone(snapshot.Cached)
	snapshot.Fetching = slices.Clone(snapshot.Fetching)

	SortDirectors(snapshot.Directors)
	SortCached(snapshot.Cached)
	SortFetching(snapshot.Fetching)
	return &Static{snapshot: snapshot}
}

// LoadSnapshot reads a JSON snapshot file.
func LoadSnapshot(path string) (Snapshot, error) {
	var snapshot Snapshot

	data, err := os.ReadFile(path)
	if err != nil {
		return snapshot, fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("parse snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *Static) Directors(ctx context.Context) ([]Director, error) {
	return slices.Clone(s.snapshot.Directors), ctx.Err()
}

func (s *Static) Cached(ctx context.Context) ([]CacheEntry, error) {
	return slices.Clone(s.snapshot.Cached), ctx.Err()
}

func (s *Static) Performance(ctx context.Context) (Performance, error) {
	return s.snapshot.Performance, ctx.Err()
}

func (s *Static) Fetching(ctx context.Context) ([]Fetch, error) {
	return slices.Clone(s.snapshot.Fetching), ctx.Err()
}
