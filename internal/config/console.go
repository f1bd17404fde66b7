package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/proxy-console/pkg/pagination"
)

const (
	// EnvConsoleBasePath overrides the prefix the console is mounted under.
	EnvConsoleBasePath = "CONSOLE_BASE_PATH"

	// EnvConsoleNotFound overrides the unknown-path policy.
	EnvConsoleNotFound = "CONSOLE_NOT_FOUND"

	// EnvConsoleTokenCookie overrides the admin token cookie name.
	EnvConsoleTokenCookie = "CONSOLE_TOKEN_COOKIE"
)

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "CONSOLE_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "CONSOLE_PAGINATION_MAX_PAGE_SIZE",
}

// NotFoundPolicy selects how the console answers a path with no route.
type NotFoundPolicy string

const (
	// NotFoundRedirect sends the client to the root route.
	NotFoundRedirect NotFoundPolicy = "redirect"

	// NotFoundStatus answers 404 without leaving the requested URL.
	NotFoundStatus NotFoundPolicy = "status"
)

// ConsoleConfig contains settings for the navigation layer.
type ConsoleConfig struct {
	BasePath    string            `toml:"base_path"`
	NotFound    NotFoundPolicy    `toml:"not_found"`
	TokenCookie string            `toml:"token_cookie"`
	Pagination  pagination.Config `toml:"pagination"`
}

// Finalize applies defaults, loads environment overrides, and validates.
func (c *ConsoleConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge applies values from overlay that differ from zero values.
func (c *ConsoleConfig) Merge(overlay *ConsoleConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.NotFound != "" {
		c.NotFound = overlay.NotFound
	}
	if overlay.TokenCookie != "" {
		c.TokenCookie = overlay.TokenCookie
	}
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *ConsoleConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/console"
	}
	if c.NotFound == "" {
		c.NotFound = NotFoundRedirect
	}
	if c.TokenCookie == "" {
		c.TokenCookie = "console_token"
	}
}

func (c *ConsoleConfig) loadEnv() {
	if v := os.Getenv(EnvConsoleBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvConsoleNotFound); v != "" {
		c.NotFound = NotFoundPolicy(v)
	}
	if v := os.Getenv(EnvConsoleTokenCookie); v != "" {
		c.TokenCookie = v
	}
}

func (c *ConsoleConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || len(c.BasePath) < 2 ||
		strings.Contains(c.BasePath[1:], "/") {
		return fmt.Errorf("invalid base_path %q: must be a single segment like /console", c.BasePath)
	}
	switch c.NotFound {
	case NotFoundRedirect, NotFoundStatus:
	default:
		return fmt.Errorf("invalid not_found %q: must be redirect or status", c.NotFound)
	}
	return nil
}
