package di

import (
	"os"

	"kilometers.ai/deskgen/internal/config"
	"kilometers.ai/deskgen/internal/core/desktop"
	"kilometers.ai/deskgen/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	Generator    *desktop.Generator
	CLIContainer *cli.CLIContainer
}

// NewContainer wires the generator and CLI collaborators. Configuration and
// logging are set up by the root command once flags are parsed.
func NewContainer() *Container {
	generator := desktop.New()

	return &Container{
		Generator: generator,
		CLIContainer: &cli.CLIContainer{
			Generator:  generator,
			LoadConfig: config.Load,
			HomeDir:    os.UserHomeDir,
		},
	}
}

// GetCLIContainer returns the CLI container
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}
