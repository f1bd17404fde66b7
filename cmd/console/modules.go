package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/proxy-console/internal/config"
	"github.com/JaimeStill/proxy-console/internal/console"
	"github.com/JaimeStill/proxy-console/internal/views"
	"github.com/JaimeStill/proxy-console/pkg/middleware"
	"github.com/JaimeStill/proxy-console/pkg/module"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

// Modules are the prefixed handlers mounted on the root router.
type Modules struct {
	Console *console.Console
}

// NewModules builds the console over runtime's admin source and registers
// its view lifecycle hooks.
func NewModules(runtime *Runtime, cfg *config.Config) (*Modules, error) {
	c, err := newConsole(runtime, cfg)
	if err != nil {
		return nil, err
	}
	c.Mount(runtime.Lifecycle)

	return &Modules{Console: c}, nil
}

// Mount attaches every module to router with its middleware stack.
func (m *Modules) Mount(router *module.Router, runtime *Runtime, cfg *config.Config) {
	consoleModule := m.Console.Module()
	consoleModule.Use(middleware.CorrelationID())
	consoleModule.Use(middleware.Logger(runtime.Logger))
	consoleModule.Use(middleware.Recover(runtime.Logger))
	consoleModule.Use(middleware.CORS(&cfg.CORS))
	router.Mount(consoleModule)
}

func newConsole(runtime *Runtime, cfg *config.Config) (*console.Console, error) {
	set, err := views.New(runtime.Source, views.Options{
		TokenCookie: cfg.Console.TokenCookie,
		Pagination:  cfg.Console.Pagination,
	}, runtime.Logger)
	if err != nil {
		return nil, err
	}

	registry, err := navigation.New(console.Routes(set)...)
	if err != nil {
		return nil, fmt.Errorf("route table: %w", err)
	}

	return console.New(&cfg.Console, registry, runtime.Logger), nil
}

func buildRouter(runtime *Runtime, modules *Modules, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.Console.BasePath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !runtime.Lifecycle.Ready() || !modules.Console.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	modules.Mount(router, runtime, cfg)
	return router
}
