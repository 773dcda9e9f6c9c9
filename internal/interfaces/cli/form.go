package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kilometers.ai/deskgen/internal/core/desktop"
)

// Input order in the form.
const (
	inputExec = iota
	inputName
	inputIcon
	inputVersion
	inputComment
	inputCount
)

var inputLabels = [inputCount]string{"Executable", "Name", "Icon", "Version", "Comment"}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// NewFormCommand creates the form command
func NewFormCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Fill in a launcher interactively",
		Long: `Open an interactive form for the launcher fields.

Controls: [Tab/↓] next field, [Shift+Tab/↑] previous, [Ctrl+T] toggle
user/system install, [Ctrl+S] or [Enter] on the last field to write,
[Esc] quit. Errors are shown in the form; fix the field and try again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(container)
		},
	}
}

func runForm(container *CLIContainer) error {
	program := tea.NewProgram(newFormModel(container), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("form failed: %w", err)
	}

	return nil
}

// formModel holds the state for the Bubble Tea form
type formModel struct {
	container  *CLIContainer
	inputs     []textinput.Model
	focus      int
	scope      Scope
	generating bool
	status     string
	statusErr  bool
	width      int
}

// generatedMsg reports the outcome of a generate command
type generatedMsg struct {
	path string
	err  error
}

func newFormModel(container *CLIContainer) formModel {
	cfg := container.settings()

	m := formModel{
		container: container,
		inputs:    make([]textinput.Model, inputCount),
		scope:     Scope(cfg.Scope),
	}

	placeholders := [inputCount]string{
		"/usr/bin/app",
		"My App",
		"optional, path to an image",
		desktop.Fields{Version: cfg.DefaultVersion}.EffectiveVersion(),
		"optional",
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 4096
		ti.Width = 48
		m.inputs[i] = ti
	}
	m.inputs[inputExec].Focus()

	return m
}

// Init implements the Bubble Tea init method
func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements the Bubble Tea update method
func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			cmd := m.moveFocus(1)
			return m, cmd

		case "shift+tab", "up":
			cmd := m.moveFocus(-1)
			return m, cmd

		case "enter":
			if m.focus == inputCount-1 {
				return m.generate()
			}
			cmd := m.moveFocus(1)
			return m, cmd

		case "ctrl+s":
			return m.generate()

		case "ctrl+t":
			m.scope = m.scope.Toggle()
			return m, nil
		}

	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
		} else {
			m.status = "Created " + msg.path
			m.statusErr = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// moveFocus shifts focus by delta, wrapping around
func (m *formModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + inputCount) % inputCount
	return m.inputs[m.focus].Focus()
}

// fields reads the current input values. An empty icon input means no icon.
func (m formModel) fields() desktop.Fields {
	fields := desktop.Fields{
		Exec:    m.inputs[inputExec].Value(),
		Name:    m.inputs[inputName].Value(),
		Version: m.inputs[inputVersion].Value(),
		Comment: m.inputs[inputComment].Value(),
	}
	if icon := m.inputs[inputIcon].Value(); icon != "" {
		fields.Icon = desktop.SomePath(icon)
	}
	if fields.Version == "" {
		fields.Version = m.container.settings().DefaultVersion
	}
	return fields
}

// generate snapshots the fields and returns a command that writes them
func (m formModel) generate() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	m.generating = true
	m.status = ""

	fields := m.fields()
	scope := m.scope
	container := m.container

	return m, func() tea.Msg {
		if err := container.Generator.Validate(fields); err != nil {
			return generatedMsg{err: err}
		}
		destination, err := ResolveDestination(scope, fields.Name, container.HomeDir)
		if err != nil {
			return generatedMsg{err: err}
		}
		container.logger().Debug("resolved destination", "path", destination)
		if err := container.Generator.Generate(fields, destination); err != nil {
			return generatedMsg{path: destination, err: err}
		}
		return generatedMsg{path: destination}
	}
}

// View implements the Bubble Tea view method
func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Desktop Shortcut Generator"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := blurredStyle
		if i == m.focus {
			label = focusedStyle
		}
		b.WriteString(label.Width(12).Render(inputLabels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderDestination())
	b.WriteString("\n\n")

	switch {
	case m.generating:
		b.WriteString(blurredStyle.Render("Writing..."))
	case m.status != "" && m.statusErr:
		b.WriteString(errorStyle.Render("✗ " + m.status))
	case m.status != "":
		b.WriteString(successStyle.Render("✓ " + m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("[Tab] Next | [Shift+Tab] Prev | [Ctrl+T] User/System | [Ctrl+S] Create | [Esc] Quit"))

	return b.String()
}

// renderDestination previews where the launcher will be written
func (m formModel) renderDestination() string {
	name := m.inputs[inputName].Value()
	if name == "" {
		name = "<name>"
	}

	destination, err := ResolveDestination(m.scope, name, m.container.HomeDir)
	if err != nil {
		destination = err.Error()
	}

	return fmt.Sprintf("Install (%s): %s", m.scope, destination)
}
