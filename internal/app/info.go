// Where: internal/app/info.go
// What: Status output for invocations without arguments.
// Why: Give users a quick view of configuration and workspace state.
package app

import (
	"io"
	"os"
	"sort"

	"github.com/diamonds-dev/diamondbox/internal/config"
	"github.com/diamonds-dev/diamondbox/internal/ui"
	"github.com/diamonds-dev/diamondbox/internal/version"
)

// runNoArgs handles the case when dbox is invoked without arguments.
func runNoArgs(deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	configPath, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("⚙️", "Config")
	console.Item("version", version.String())
	console.Item("path", configPath)

	paths := resolvePaths(CLI{}, deps)
	console.Header("📦", "Workspace")
	console.Item("dir", paths.Dir)
	console.Item("env file", fileStatus(paths.EnvFile))
	console.Item("template", fileStatus(paths.Template))
	console.Item("generated", fileStatus(paths.Output))

	cfg, err := config.LoadGlobalConfig(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return exitWithError(out, err)
		}
		console.Info("run 'dbox init' to generate devcontainer.json")
		return 0
	}

	if len(cfg.Workspaces) > 0 {
		console.Header("🗂", "Known workspaces")
		dirs := make([]string, 0, len(cfg.Workspaces))
		for dir := range cfg.Workspaces {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		for _, dir := range dirs {
			console.Item(dir, cfg.Workspaces[dir].LastInit)
		}
	}
	return 0
}

func fileStatus(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " (missing)"
	}
	return path
}
