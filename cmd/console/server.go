package main

import (
	"time"

	"github.com/JaimeStill/proxy-console/internal/config"
	"github.com/JaimeStill/proxy-console/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	runtime *Runtime
	modules *Modules
	http    *server.Server
}

// NewServer creates and wires every subsystem.
func NewServer(cfg *config.Config) (*Server, error) {
	runtime, err := NewRuntime(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(runtime, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(runtime, modules, cfg)

	runtime.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"env", cfg.Env(),
		"console", cfg.Console.BasePath,
		"upstream", cfg.Upstream.Mode,
	)

	return &Server{
		runtime: runtime,
		modules: modules,
		http:    server.New(&cfg.Server, router, runtime.Logger),
	}, nil
}

// Start begins serving and logs once every startup hook has finished.
func (s *Server) Start() error {
	s.runtime.Logger.Info("starting service")

	if err := s.http.Start(s.runtime.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.runtime.Lifecycle.WaitForStartup()
		s.runtime.Logger.Info("all subsystems ready", "views_mounted", s.modules.Console.Ready())
	}()

	return nil
}

// Shutdown stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")
	return s.runtime.Lifecycle.Shutdown(timeout)
}
