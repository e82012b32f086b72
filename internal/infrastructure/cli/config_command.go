package cli

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/glot-go/internal/app"
	"github.com/doeshing/glot-go/internal/infrastructure/config"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect glot configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container)
		},
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigPathCommand(container),
		newConfigDiffCommand(container),
	)

	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container)
		},
	}
}

func newConfigPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}
}

func newConfigDiffCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Diff the effective configuration against the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			defaults, err := config.Default()
			if err != nil {
				return err
			}
			diff := cmp.Diff(defaults, cfg)
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No differences from default configuration.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}

func showConfiguration(cmd *cobra.Command, container *app.Container) error {
	cfg, err := container.ConfigLoader.Load(cmd.Context())
	if err != nil {
		return err
	}
	// The token never leaks into `config show` output.
	if cfg.Token != "" {
		cfg.Token = "***"
	}
	return yaml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
}
