// Where: internal/app/env.go
// What: Env subcommands for inspecting and exporting the mapping.
// Why: The launcher receives values through explicit output, not ambient
//      process environment mutation.
package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/diamonds-dev/diamondbox/internal/envfile"
	"github.com/diamonds-dev/diamondbox/internal/ui"
	"github.com/joho/godotenv"
)

func runEnvShow(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	paths := resolvePaths(cli, deps)

	mapping, usingDefaults, err := loadMappingForDisplay(cli, deps, console)
	if err != nil {
		return exitWithError(out, err)
	}

	if usingDefaults {
		console.Info("no env file at " + paths.EnvFile + ", showing defaults")
	}
	console.Header("🌐", "Environment mapping")
	keys := mapping.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		console.Item(key, mapping[key])
	}
	return 0
}

func runEnvExport(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(os.Stderr)

	mapping, _, err := loadMappingForDisplay(cli, deps, console)
	if err != nil {
		return exitWithError(out, err)
	}

	content, err := godotenv.Marshal(mapping)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintln(out, content)
	return 0
}

// loadMappingForDisplay loads the env file without creating it, falling
// back to the parsed default scaffold when no file exists yet.
func loadMappingForDisplay(cli CLI, deps Dependencies, console *ui.Console) (envfile.Mapping, bool, error) {
	paths := resolvePaths(cli, deps)

	warn := func(line int, text string) {
		console.Warn(fmt.Sprintf("skipping invalid line %d in %s: %s", line, paths.EnvFile, text))
	}
	mapping, err := envfile.Load(paths.EnvFile, warn)
	if err == nil {
		return mapping, false, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, err
	}

	content, err := envfile.DefaultContent()
	if err != nil {
		return nil, false, err
	}
	mapping, err = envfile.Parse(strings.NewReader(content), nil)
	if err != nil {
		return nil, false, err
	}
	return mapping, true, nil
}
