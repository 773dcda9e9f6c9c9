package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kilometers.ai/deskgen/internal/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
	}

	configCmd.AddCommand(NewConfigShowCommand(container))
	configCmd.AddCommand(NewConfigPathCommand(container))

	return configCmd
}

// NewConfigShowCommand creates the show subcommand
func NewConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.settings()
			out := cmd.OutOrStdout()

			source := cfg.Source
			if source == "" {
				source = "(defaults)"
			}
			defaultVersion := cfg.DefaultVersion
			if defaultVersion == "" {
				defaultVersion = "(not set)"
			}

			fmt.Fprintln(out, "Current Configuration:")
			fmt.Fprintf(out, "Source: %s\n", source)
			fmt.Fprintf(out, "Scope: %s\n", cfg.Scope)
			fmt.Fprintf(out, "Default Version: %s\n", defaultVersion)
			fmt.Fprintf(out, "Log Level: %s\n", cfg.LogLevel)
			return nil
		},
	}
}

// NewConfigPathCommand creates the path subcommand
func NewConfigPathCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file path: %s\n", path)
			return nil
		},
	}
}
