// Where: internal/app/init.go
// What: Init command implementation.
// Why: Materialize devcontainer.json from the template and .env before launch.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diamonds-dev/diamondbox/internal/config"
	"github.com/diamonds-dev/diamondbox/internal/devcontainer"
	"github.com/diamonds-dev/diamondbox/internal/envfile"
	"github.com/diamonds-dev/diamondbox/internal/interaction"
	"github.com/diamonds-dev/diamondbox/internal/meta"
	"github.com/diamonds-dev/diamondbox/internal/ui"
)

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	paths := resolvePaths(cli, deps)

	console.Header("🧱", "Diamonds devcontainer initialization")

	warn := func(line int, text string) {
		console.Warn(fmt.Sprintf("skipping invalid line %d in %s: %s", line, paths.EnvFile, text))
	}
	mapping, created, err := envfile.LoadOrCreate(paths.EnvFile, warn)
	if err != nil {
		return exitWithError(out, err)
	}
	if created {
		console.Info("created default env file at " + paths.EnvFile)
	}
	console.Success(fmt.Sprintf("loaded %d variables from %s", len(mapping), paths.EnvFile))

	subs := devcontainer.SubstitutionsFrom(mapping)
	if cli.Init.Interactive {
		subs, err = promptSubstitutions(deps.Prompter, subs)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	if !devcontainer.ValidIdentifier(subs.WorkspaceName) {
		return exitWithError(out, fmt.Errorf(
			"invalid WORKSPACE_NAME %q: only letters, digits, underscores, and hyphens are allowed",
			subs.WorkspaceName))
	}

	templateText, err := os.ReadFile(paths.Template)
	if err != nil {
		if os.IsNotExist(err) {
			return exitWithError(out, fmt.Errorf(
				"template not found at %s (run '%s scaffold' to create one)",
				paths.Template, meta.AppName))
		}
		return exitWithError(out, err)
	}

	if !cli.Init.Yes && interaction.IsTerminal(os.Stdin) {
		if _, err := os.Stat(paths.Output); err == nil {
			confirmed, err := interaction.PromptYesNo(fmt.Sprintf("Overwrite %s?", paths.Output))
			if err != nil {
				return exitWithError(out, err)
			}
			if !confirmed {
				console.Info("aborted, existing config left untouched")
				return 1
			}
		}
	}

	rendered := devcontainer.Render(string(templateText), subs)

	missing, err := devcontainer.WriteAndVerify(paths.Output, rendered)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Success("generated " + paths.Output)
	console.Item("WORKSPACE_NAME", subs.WorkspaceName)
	console.Item("DIAMOND_NAME", subs.DiamondName)

	if doc, err := devcontainer.ParseDocument([]byte(rendered)); err == nil {
		if err := devcontainer.ValidateSchema(doc); err != nil {
			console.Warn(err.Error())
		}
	}

	if len(missing) > 0 {
		for _, key := range missing {
			console.Warn(fmt.Sprintf("generated config is missing required key %q", key))
		}
		if cli.Init.Strict {
			return exitWithError(out, fmt.Errorf(
				"missing required keys: %s", strings.Join(missing, ", ")))
		}
	} else {
		console.Success("configuration is valid")
	}

	if err := config.RecordWorkspace(deps.ProjectDir, paths.Template, deps.Now()); err != nil {
		console.Warn("could not update global config: " + err.Error())
	}
	return 0
}

func promptSubstitutions(prompter interaction.Prompter, subs devcontainer.Substitutions) (devcontainer.Substitutions, error) {
	workspace, err := prompter.Input("Workspace name", []string{subs.WorkspaceName})
	if err != nil {
		return subs, err
	}
	if strings.TrimSpace(workspace) != "" {
		subs.WorkspaceName = strings.TrimSpace(workspace)
	}

	diamond, err := prompter.Input("Diamond name", []string{subs.DiamondName})
	if err != nil {
		return subs, err
	}
	if strings.TrimSpace(diamond) != "" {
		subs.DiamondName = strings.TrimSpace(diamond)
	}
	return subs, nil
}
