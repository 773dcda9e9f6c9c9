package cli

import (
	"github.com/spf13/cobra"

	"kilometers.ai/deskgen/internal/config"
	"kilometers.ai/deskgen/internal/core/desktop"
	"kilometers.ai/deskgen/internal/infrastructure/manifest"
)

// FieldFlags holds the launcher fields accepted on the command line
type FieldFlags struct {
	Exec     string
	Name     string
	Icon     string
	Version  string
	Comment  string
	Manifest string
}

func (f *FieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Exec, "exec", "", "Path of the executable to launch")
	cmd.Flags().StringVar(&f.Name, "name", "", "Display name, also used as the file name")
	cmd.Flags().StringVar(&f.Icon, "icon", "", "Path of the icon file")
	cmd.Flags().StringVar(&f.Version, "app-version", "", "Value of the Version key (default 1.0)")
	cmd.Flags().StringVar(&f.Comment, "comment", "", "Tooltip comment")
	cmd.Flags().StringVarP(&f.Manifest, "from", "f", "", "Read fields from a YAML manifest; flags override it")
}

// fields merges the manifest, explicitly set flags and the configured default
// version, in that order.
func (f *FieldFlags) fields(cmd *cobra.Command, cfg *config.Config) (desktop.Fields, error) {
	var fields desktop.Fields

	if f.Manifest != "" {
		loaded, err := manifest.Load(f.Manifest)
		if err != nil {
			return desktop.Fields{}, err
		}
		fields = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("exec") {
		fields.Exec = f.Exec
	}
	if flags.Changed("name") {
		fields.Name = f.Name
	}
	if flags.Changed("icon") {
		fields.Icon = desktop.SomePath(f.Icon)
	}
	if flags.Changed("app-version") {
		fields.Version = f.Version
	}
	if flags.Changed("comment") {
		fields.Comment = f.Comment
	}

	if fields.Version == "" {
		fields.Version = cfg.DefaultVersion
	}

	return fields, nil
}
