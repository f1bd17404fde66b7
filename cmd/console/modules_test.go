package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/proxy-console/internal/config"
	"github.com/JaimeStill/proxy-console/pkg/middleware"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			Mode:     config.UpstreamStatic,
			Snapshot: "../../internal/admin/testdata/snapshot.json",
		},
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	return cfg
}

func TestBuildRouter(t *testing.T) {
	cfg := testConfig(t)

	runtime, err := NewRuntime(cfg)
	if err != nil {
		t.Fatalf("NewRuntime() failed: %v", err)
	}
	modules, err := NewModules(runtime, cfg)
	if err != nil {
		t.Fatalf("NewModules() failed: %v", err)
	}
	router := buildRouter(runtime, modules, cfg)

	serve := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	if rec := serve("/readyz"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readyz before startup = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	runtime.Lifecycle.WaitForStartup()
	t.Cleanup(func() { runtime.Lifecycle.Shutdown(5 * time.Second) })

	tests := []struct {
		target   string
		status   int
		location string
	}{
		{"/healthz", http.StatusOK, ""},
		{"/readyz", http.StatusOK, ""},
		{"/", http.StatusFound, "/console/"},
		{"/console", http.StatusOK, ""},
		{"/console/cached", http.StatusOK, ""},
		{"/console/unknown", http.StatusFound, "/console/"},
		{"/console/api/routes", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(tt.target)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.location != "" && rec.Header().Get("Location") != tt.location {
				t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), tt.location)
			}
		})
	}

	if rec := serve("/console/cached"); rec.Header().Get(middleware.HeaderCorrelationID) == "" {
		t.Error("console responses should carry a correlation id")
	}
}
