package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kilometers.ai/deskgen/internal/core/desktop"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Width(10)
	unsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// NewShowCommand creates the show command
func NewShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the fields of an existing launcher file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			fields, err := desktop.Parse(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			printFields(cmd.OutOrStdout(), fields)
			return nil
		},
	}
}

func printFields(w io.Writer, fields desktop.Fields) {
	icon, hasIcon := fields.Icon.Get()

	rows := []struct {
		label string
		value string
		set   bool
	}{
		{"Name", fields.Name, fields.Name != ""},
		{"Exec", fields.Exec, fields.Exec != ""},
		{"Icon", icon, hasIcon},
		{"Version", fields.Version, fields.Version != ""},
		{"Comment", fields.Comment, fields.Comment != ""},
	}

	for _, row := range rows {
		value := row.value
		if !row.set {
			value = unsetStyle.Render("(not set)")
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row.label), value))
	}
}
