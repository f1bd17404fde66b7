package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/proxy-console/internal/admin"
	"github.com/JaimeStill/proxy-console/internal/config"
	"github.com/JaimeStill/proxy-console/internal/console"
	"github.com/JaimeStill/proxy-console/internal/views"
	"github.com/JaimeStill/proxy-console/pkg/logging"
	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Inspect the console route table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List routes in menu order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, cfg, err := inspectRegistry(opts)
			if err != nil {
				return err
			}
			renderRoutes(cmd.OutOrStdout(), cfg, registry.List()...)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a literal path to its route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, cfg, err := inspectRegistry(opts)
			if err != nil {
				return err
			}
			route, err := registry.ResolvePath(args[0])
			if err != nil {
				return notFound(registry, cfg, err)
			}
			renderRoutes(cmd.OutOrStdout(), cfg, route)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "name <name>",
		Short: "Resolve a route name to its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, cfg, err := inspectRegistry(opts)
			if err != nil {
				return err
			}
			route, err := registry.ResolveName(args[0])
			if err != nil {
				return notFound(registry, cfg, err)
			}
			renderRoutes(cmd.OutOrStdout(), cfg, route)
			return nil
		},
	})

	return cmd
}

// inspectRegistry builds the route table over an empty snapshot. Route
// inspection never contacts the proxy.
func inspectRegistry(opts *rootOptions) (*navigation.Registry, *config.Config, error) {
	cfg, err := loadConfig(opts.configPath, true)
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewWriter(&cfg.Logging, io.Discard)
	set, err := views.New(admin.NewStatic(admin.Snapshot{}), views.Options{TokenCookie: cfg.Console.TokenCookie}, logger)
	if err != nil {
		return nil, nil, err
	}

	registry, err := navigation.New(console.Routes(set)...)
	if err != nil {
		return nil, nil, err
	}
	return registry, cfg, nil
}

func notFound(registry *navigation.Registry, cfg *config.Config, err error) error {
	if !errors.Is(err, navigation.ErrRouteNotFound) {
		return err
	}
	if cfg.Console.NotFound == config.NotFoundRedirect {
		if root, ok := registry.Root(); ok {
			return fmt.Errorf("%w (requests redirect to %q)", err, root.Name)
		}
	}
	return err
}

func renderRoutes(w io.Writer, cfg *config.Config, routes ...navigation.Route) {
	page := navigation.Page{BasePath: cfg.Console.BasePath}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Path", "Title", "Href", "Accepts"})

	for _, route := range routes {
		name := route.Name
		if route.Path == navigation.RootPath {
			name = color.New(color.Bold).Sprint(route.Name)
		}

		accepts := "GET"
		if _, ok := route.View.(navigation.Submitter); ok {
			accepts = "GET, POST"
		}

		t.AppendRow(table.Row{name, route.Path, route.Title, page.Href(route), accepts})
	}

	t.Render()
}
