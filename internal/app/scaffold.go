// Where: internal/app/scaffold.go
// What: Scaffold command implementation.
// Why: Give new projects a working devcontainer template to start from.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/diamonds-dev/diamondbox/internal/devcontainer"
	"github.com/diamonds-dev/diamondbox/internal/ui"
)

func runScaffold(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	paths := resolvePaths(cli, deps)

	if !cli.Scaffold.Force {
		if _, err := os.Stat(paths.Template); err == nil {
			return exitWithError(out, fmt.Errorf(
				"template already exists at %s (use --force to overwrite)", paths.Template))
		}
	}

	cfg := devcontainer.DefaultScaffoldConfig()
	cfg.Service = cli.Scaffold.Service
	cfg.ComposeFile = cli.Scaffold.ComposeFile

	if err := devcontainer.WriteScaffold(paths.Template, cfg); err != nil {
		return exitWithError(out, err)
	}

	console.Success("wrote starter template to " + paths.Template)
	console.Item("service", cfg.Service)
	console.Item("compose file", cfg.ComposeFile)
	console.Info("edit the template, then run 'dbox init' to generate devcontainer.json")
	return 0
}
