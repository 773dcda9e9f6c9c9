package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kilometers.ai/deskgen/internal/core/desktop"
)

func sendKey(t *testing.T, m formModel, key tea.KeyMsg) (formModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	model, ok := next.(formModel)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m formModel, text string) formModel {
	t.Helper()
	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// fillForm types values into the inputs in order, leaving focus on Comment.
func fillForm(t *testing.T, m formModel, values ...string) formModel {
	t.Helper()
	for i, v := range values {
		if v != "" {
			m = typeText(t, m, v)
		}
		if i < len(values)-1 {
			m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
	}
	return m
}

// commit runs the generate command and feeds its result back into the model.
func commit(t *testing.T, m formModel, key tea.KeyMsg) formModel {
	t.Helper()
	m, cmd := sendKey(t, m, key)
	require.NotNil(t, cmd)
	assert.True(t, m.generating)
	next, _ := m.Update(cmd())
	return next.(formModel)
}

func TestForm_FocusNavigationWraps(t *testing.T) {
	env := newTestEnv(t)
	m := newFormModel(env.container)
	require.Equal(t, inputExec, m.focus)

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, inputComment, m.focus)
	assert.True(t, m.inputs[inputComment].Focused())
	assert.False(t, m.inputs[inputExec].Focused())

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputExec, m.focus)

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, inputName, m.focus)
}

func TestForm_CollectsFields(t *testing.T) {
	env := newTestEnv(t)
	m := fillForm(t, newFormModel(env.container), env.exe, "App", "", "", "hello")

	fields := m.fields()
	assert.Equal(t, env.exe, fields.Exec)
	assert.Equal(t, "App", fields.Name)
	assert.False(t, fields.Icon.IsPresent(), "empty icon input means no icon")
	assert.Equal(t, "", fields.Version)
	assert.Equal(t, "hello", fields.Comment)
}

func TestForm_GeneratesUserEntry(t *testing.T) {
	env := newTestEnv(t)
	m := fillForm(t, newFormModel(env.container), env.exe, "FormApp", "", "", "")

	m = commit(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.generating)
	assert.False(t, m.statusErr)
	assert.Equal(t, "Created "+env.userEntry("FormApp"), m.status)

	got, err := os.ReadFile(env.userEntry("FormApp"))
	require.NoError(t, err)
	assert.Equal(t, desktop.Render(desktop.Fields{Exec: env.exe, Name: "FormApp"}), got)
	assert.Contains(t, m.View(), "Created")
}

func TestForm_ErrorKeepsFormInteractive(t *testing.T) {
	env := newTestEnv(t)
	m := newFormModel(env.container)
	m = typeText(t, m, "/does/not/exist")

	m = commit(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.statusErr)
	assert.Equal(t, "executable not found: /does/not/exist", m.status)
	assert.Contains(t, m.View(), "executable not found")

	// Fix the executable and retry.
	m.inputs[inputExec].SetValue(env.exe)
	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "Retry")
	m = commit(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, m.statusErr)
	assert.FileExists(t, env.userEntry("Retry"))
}

func TestForm_FieldErrorsBeforeHomeLookup(t *testing.T) {
	env := newTestEnv(t)
	env.container.HomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
	m := typeText(t, newFormModel(env.container), "/does/not/exist")

	m = commit(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.True(t, m.statusErr)
	assert.Equal(t, "executable not found: /does/not/exist", m.status)
}

func TestForm_ScopeToggle(t *testing.T) {
	env := newTestEnv(t)
	m := newFormModel(env.container)
	require.Equal(t, ScopeUser, m.scope)

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, ScopeSystem, m.scope)
	assert.Contains(t, m.View(), filepath.Join(SystemApplicationsDir, "<name>.desktop"))

	m, _ = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, ScopeUser, m.scope)
}

func TestForm_QuitKeys(t *testing.T) {
	env := newTestEnv(t)

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := sendKey(t, newFormModel(env.container), key)
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit, "key %s should quit", key.String())
	}
}
