package config

import (
	"fmt"
	"os"
	"time"

	"github.com/docker/go-units"
)

const (
	// EnvUpstreamMode overrides the admin data source mode.
	EnvUpstreamMode = "UPSTREAM_MODE"

	// EnvUpstreamBaseURL overrides the admin API base URL.
	EnvUpstreamBaseURL = "UPSTREAM_BASE_URL"

	// EnvUpstreamTokenHeader overrides the header carrying the admin token.
	EnvUpstreamTokenHeader = "UPSTREAM_TOKEN_HEADER"

	// EnvUpstreamTimeout overrides the admin request timeout.
	EnvUpstreamTimeout = "UPSTREAM_TIMEOUT"

	// EnvUpstreamMaxResponseSize overrides the response size limit.
	EnvUpstreamMaxResponseSize = "UPSTREAM_MAX_RESPONSE_SIZE"

	// EnvUpstreamSnapshot overrides the static snapshot path.
	EnvUpstreamSnapshot = "UPSTREAM_SNAPSHOT"
)

// UpstreamMode selects where the console reads proxy state from.
type UpstreamMode string

const (
	// UpstreamHTTP reads from a running proxy admin API.
	UpstreamHTTP UpstreamMode = "http"

	// UpstreamStatic reads from a JSON snapshot file.
	UpstreamStatic UpstreamMode = "static"
)

// UpstreamConfig contains settings for the proxy admin data source.
type UpstreamConfig struct {
	Mode            UpstreamMode `toml:"mode"`
	BaseURL         string       `toml:"base_url"`
	TokenHeader     string       `toml:"token_header"`
	Timeout         string       `toml:"timeout"`
	MaxResponseSize string       `toml:"max_response_size"`
	Snapshot        string       `toml:"snapshot"`
}

// TimeoutDuration parses Timeout.
func (c *UpstreamConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// MaxResponseSizeBytes parses MaxResponseSize as a human-readable size.
func (c *UpstreamConfig) MaxResponseSizeBytes() int64 {
	size, _ := units.RAMInBytes(c.MaxResponseSize)
	return size
}

// Finalize applies defaults, loads environment overrides, and validates.
func (c *UpstreamConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay that differ from zero values.
func (c *UpstreamConfig) Merge(overlay *UpstreamConfig) {
	if overlay.Mode != "" {
		c.Mode = overlay.Mode
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.TokenHeader != "" {
		c.TokenHeader = overlay.TokenHeader
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxResponseSize != "" {
		c.MaxResponseSize = overlay.MaxResponseSize
	}
	if overlay.Snapshot != "" {
		c.Snapshot = overlay.Snapshot
	}
}

func (c *UpstreamConfig) loadDefaults() {
	if c.Mode == "" {
		c.Mode = UpstreamHTTP
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:3015/admin/api"
	}
	if c.TokenHeader == "" {
		c.TokenHeader = "X-Admin-Token"
	}
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
	if c.MaxResponseSize == "" {
		c.MaxResponseSize = "10MB"
	}
}

func (c *UpstreamConfig) loadEnv() {
	if v := os.Getenv(EnvUpstreamMode); v != "" {
		c.Mode = UpstreamMode(v)
	}
	if v := os.Getenv(EnvUpstreamBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvUpstreamTokenHeader); v != "" {
		c.TokenHeader = v
	}
	if v := os.Getenv(EnvUpstreamTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvUpstreamMaxResponseSize); v != "" {
		c.MaxResponseSize = v
	}
	if v := os.Getenv(EnvUpstreamSnapshot); v != "" {
		c.Snapshot = v
	}
}

func (c *UpstreamConfig) validate() error {
	switch c.Mode {
	case UpstreamHTTP:
	case UpstreamStatic:
		if c.Snapshot == "" {
			return fmt.Errorf("snapshot required when mode is %q", UpstreamStatic)
		}
	default:
		return fmt.Errorf("invalid mode %q: must be http or static", c.Mode)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	size, err := units.RAMInBytes(c.MaxResponseSize)
	if err != nil {
		return fmt.Errorf("invalid max_response_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("invalid max_response_size: %s", c.MaxResponseSize)
	}
	return nil
}
