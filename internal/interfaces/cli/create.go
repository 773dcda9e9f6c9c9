package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CreateFlags holds command-line flags for the create command
type CreateFlags struct {
	FieldFlags
	System      bool
	Destination string
}

// NewCreateCommand creates the create command
func NewCreateCommand(container *CLIContainer) *cobra.Command {
	flags := &CreateFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a launcher file from flags or a manifest",
		Long: `Validate the given fields and write a Desktop Entry file.

The executable (and icon, when given) must exist and the name must not be
empty. Nothing is written if any check fails. An existing file at the
destination is overwritten.

Examples:
  deskgen create --exec /opt/foo/foo --name Foo
  deskgen create --exec /opt/foo/foo --name Foo --icon /opt/foo/foo.png --system
  deskgen create -f foo.yaml --dest ./Foo.desktop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, container, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.System, "system", false, "Install under "+SystemApplicationsDir)
	cmd.Flags().StringVarP(&flags.Destination, "dest", "o", "", "Write to this path instead of the scope directory")

	return cmd
}

func runCreate(cmd *cobra.Command, container *CLIContainer, flags *CreateFlags) error {
	cfg := container.settings()
	log := container.logger()

	fields, err := flags.fields(cmd, cfg)
	if err != nil {
		return err
	}

	// Field errors take precedence over destination lookup failures.
	if err := container.Generator.Validate(fields); err != nil {
		return err
	}

	destination := flags.Destination
	if destination == "" {
		scope := Scope(cfg.Scope)
		if flags.System {
			scope = ScopeSystem
		}
		destination, err = ResolveDestination(scope, fields.Name, container.HomeDir)
		if err != nil {
			return err
		}
	}
	log.Debug("resolved destination", "path", destination)

	if err := container.Generator.Generate(fields, destination); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", destination)
	return nil
}
