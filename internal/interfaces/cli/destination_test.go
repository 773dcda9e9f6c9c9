package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDestination(t *testing.T) {
	assert.Equal(t, "/home/alex/.local/share/applications/MyApp.desktop", UserDestination("/home/alex", "MyApp"))
}

func TestSystemDestination(t *testing.T) {
	assert.Equal(t, "/usr/share/applications/My App.desktop", SystemDestination("My App"))
}

func TestResolveDestination(t *testing.T) {
	home := func() (string, error) { return "/home/alex", nil }

	path, err := ResolveDestination(ScopeUser, "A", home)
	require.NoError(t, err)
	assert.Equal(t, "/home/alex/.local/share/applications/A.desktop", path)

	path, err = ResolveDestination(ScopeSystem, "A", home)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/applications/A.desktop", path)

	_, err = ResolveDestination(Scope("global"), "A", home)
	assert.Error(t, err)

	cause := errors.New("no home")
	_, err = ResolveDestination(ScopeUser, "A", func() (string, error) { return "", cause })
	assert.ErrorIs(t, err, cause)
}

func TestScopeToggle(t *testing.T) {
	assert.Equal(t, ScopeSystem, ScopeUser.Toggle())
	assert.Equal(t, ScopeUser, ScopeSystem.Toggle())
}
