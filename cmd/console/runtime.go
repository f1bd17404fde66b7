package main

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/proxy-console/internal/admin"
	"github.com/JaimeStill/proxy-console/internal/config"
	"github.com/JaimeStill/proxy-console/pkg/lifecycle"
	"github.com/JaimeStill/proxy-console/pkg/logging"
)

// Runtime holds the process-wide dependencies shared by modules.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Source    admin.Source
}

// NewRuntime builds the logger and admin data source from cfg.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	logger := logging.New(&cfg.Logging)

	src, err := admin.New(&cfg.Upstream, logger)
	if err != nil {
		return nil, fmt.Errorf("admin source init failed: %w", err)
	}

	return &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Source:    src,
	}, nil
}
