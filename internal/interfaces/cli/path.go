package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPathCommand creates the path command
func NewPathCommand(container *CLIContainer) *cobra.Command {
	var (
		name   string
		system bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print where a launcher with the given name would be written",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := Scope(container.settings().Scope)
			if system {
				scope = ScopeSystem
			}
			destination, err := ResolveDestination(scope, name, container.HomeDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Launcher name")
	cmd.Flags().BoolVar(&system, "system", false, "Use the system-wide directory")
	cmd.MarkFlagRequired("name")

	return cmd
}
