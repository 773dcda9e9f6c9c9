package main

import (
	"kilometers.ai/deskgen/internal/interfaces/cli"
	"kilometers.ai/deskgen/internal/interfaces/di"
)

func main() {
	container := di.NewContainer()
	cli.Execute(container.GetCLIContainer())
}
