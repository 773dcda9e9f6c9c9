package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"kilometers.ai/deskgen/internal/config"
)

// SystemApplicationsDir is where system-wide launchers are installed.
const SystemApplicationsDir = "/usr/share/applications"

// Scope selects the install location of a launcher.
type Scope string

const (
	ScopeUser   Scope = config.ScopeUser
	ScopeSystem Scope = config.ScopeSystem
)

// Toggle returns the other scope.
func (s Scope) Toggle() Scope {
	if s == ScopeSystem {
		return ScopeUser
	}
	return ScopeSystem
}

// UserDestination returns <home>/.local/share/applications/<name>.desktop.
func UserDestination(home, name string) string {
	return filepath.Join(home, ".local", "share", "applications", name+".desktop")
}

// SystemDestination returns /usr/share/applications/<name>.desktop.
func SystemDestination(name string) string {
	return filepath.Join(SystemApplicationsDir, name+".desktop")
}

// ResolveDestination builds the launcher path for name in the given scope.
// homeDir defaults to os.UserHomeDir.
func ResolveDestination(scope Scope, name string, homeDir func() (string, error)) (string, error) {
	switch scope {
	case ScopeSystem:
		return SystemDestination(name), nil
	case ScopeUser:
		if homeDir == nil {
			homeDir = os.UserHomeDir
		}
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		return UserDestination(home, name), nil
	default:
		return "", fmt.Errorf("unknown scope %q", scope)
	}
}
