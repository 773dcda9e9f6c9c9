package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command
func NewValidateCommand(container *CLIContainer) *cobra.Command {
	flags := &FieldFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check launcher fields without writing anything",
		Long: `Run the same checks as 'create' (executable exists, icon exists when
given, name not empty) and report the first failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := flags.fields(cmd, container.settings())
			if err != nil {
				return err
			}
			if err := container.Generator.Validate(fields); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
