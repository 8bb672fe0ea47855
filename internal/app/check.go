// Where: internal/app/check.go
// What: Check command implementation.
// Why: Re-validate a generated config and the compose service it points at.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/diamonds-dev/diamondbox/internal/compose"
	"github.com/diamonds-dev/diamondbox/internal/devcontainer"
	"github.com/diamonds-dev/diamondbox/internal/ui"
)

func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	path := cli.Check.Path
	if path == "" {
		path = resolvePaths(cli, deps).Output
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return exitWithError(out, err)
	}

	doc, err := devcontainer.ParseDocument(payload)
	if err != nil {
		return exitWithError(out, fmt.Errorf("%s: %w", path, err))
	}

	if missing := devcontainer.MissingKeys(doc); len(missing) > 0 {
		return exitWithError(out, fmt.Errorf(
			"%s: missing required keys: %s", path, strings.Join(missing, ", ")))
	}

	if err := devcontainer.ValidateSchema(doc); err != nil {
		return exitWithError(out, fmt.Errorf("%s: %w", path, err))
	}

	if exitCode := checkComposeService(console, out, path, doc); exitCode != 0 {
		return exitCode
	}

	console.Success(path + " is valid")
	return 0
}

// checkComposeService verifies that the service named by the config is
// defined in at least one referenced compose file. Compose files that do
// not exist yet are warned about, not fatal: they may be generated by a
// later step of the project setup.
func checkComposeService(console *ui.Console, out io.Writer, configPath string, doc map[string]any) int {
	service := devcontainer.ServiceName(doc)
	baseDir := filepath.Dir(configPath)

	loadedAny := false
	var available []string
	for _, ref := range devcontainer.ComposeFiles(doc) {
		composePath := ref
		if !filepath.IsAbs(composePath) {
			composePath = filepath.Join(baseDir, composePath)
		}

		file, err := compose.Load(composePath)
		if err != nil {
			if os.IsNotExist(err) {
				console.Warn("compose file not found: " + composePath)
				continue
			}
			return exitWithError(out, err)
		}

		loadedAny = true
		if file.HasService(service) {
			return 0
		}
		available = append(available, file.ServiceNames()...)
	}

	if loadedAny {
		return exitWithError(out, fmt.Errorf(
			"service %q is not defined in the referenced compose files (available: %s)",
			service, strings.Join(available, ", ")))
	}
	return 0
}
