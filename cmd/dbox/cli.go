// Where: cmd/dbox/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/diamonds-dev/diamondbox/internal/app"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies required by the
// CLI: the project directory, output writer, prompter, and clock.
func buildDependencies() (app.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Prompter:   app.HuhPrompter{},
		Now:        time.Now,
	}, nil
}
