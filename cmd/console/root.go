package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/proxy-console/internal/config"
)

type rootOptions struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Admin console for a caching HTTP proxy",
		Long: `console serves a browser front-end over a caching proxy's admin API.
Pages are bound to paths through a fixed route table; unknown paths fall
back to the director overview.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// a missing .env file is not an error
			if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", opts.envFile, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.BaseConfigFile, "Path to the base TOML configuration")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file loaded before configuration")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newRoutesCmd(opts))

	return cmd
}

// loadConfig reads and finalizes configuration. When optional is set a
// missing base file yields the defaults.
func loadConfig(path string, optional bool) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &config.Config{}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
