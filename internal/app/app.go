// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/diamonds-dev/diamondbox/internal/interaction"
	"github.com/diamonds-dev/diamondbox/internal/meta"
	"github.com/diamonds-dev/diamondbox/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing.
type Dependencies struct {
	ProjectDir string
	Out        io.Writer
	Prompter   interaction.Prompter
	Now        func() time.Time
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile  string `name:"env-file" short:"e" help:"Path to the .env file (default: .devcontainer/.env)"`
	Template string `short:"t" help:"Path to the devcontainer template (default: .devcontainer/devcontainer.template.json)"`
	Output   string `short:"o" help:"Path for the generated config (default: .devcontainer/devcontainer.json)"`

	Init       InitCmd       `cmd:"" help:"Generate devcontainer.json from the template and .env"`
	Check      CheckCmd      `cmd:"" help:"Validate a generated devcontainer.json"`
	Env        EnvCmd        `cmd:"" name:"env" help:"Inspect the environment mapping"`
	Scaffold   ScaffoldCmd   `cmd:"" help:"Write a starter devcontainer template"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type InitCmd struct {
	Strict      bool `help:"Treat missing required keys in the generated config as an error"`
	Interactive bool `short:"i" help:"Prompt for workspace and diamond names"`
	Yes         bool `short:"y" help:"Overwrite an existing devcontainer.json without confirmation"`
}

type CheckCmd struct {
	Path string `arg:"" optional:"" help:"Generated config to validate (default: .devcontainer/devcontainer.json)"`
}

type EnvCmd struct {
	Show   EnvShowCmd   `cmd:"" default:"1" help:"Print the loaded mapping"`
	Export EnvExportCmd `cmd:"" help:"Emit the mapping in dotenv form for the launcher"`
}

type (
	EnvShowCmd   struct{}
	EnvExportCmd struct{}
)

type ScaffoldCmd struct {
	Service     string `default:"workspace" help:"Compose service the devcontainer attaches to"`
	ComposeFile string `name:"compose-file" default:"docker-compose.yml" help:"Compose file referenced by the template"`
	Force       bool   `help:"Overwrite an existing template"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments and dispatches to the matching handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Prompter == nil {
		deps.Prompter = HuhPrompter{}
	}

	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name(meta.AppName),
		kong.Description("Host-side bootstrap for the Diamonds devcontainer."))
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"init":            runInit,
		"check":           runCheck,
		"check <path>":    runCheck,
		"env":             runEnvShow,
		"env show":        runEnvShow,
		"env export":      runEnvExport,
		"scaffold":        runScaffold,
		"completion bash": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.String())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// workspacePaths holds the resolved file locations for one run.
type workspacePaths struct {
	Dir      string
	EnvFile  string
	Template string
	Output   string
}

// resolvePaths computes the .devcontainer file locations, honoring the
// global flag overrides.
func resolvePaths(cli CLI, deps Dependencies) workspacePaths {
	dir := filepath.Join(deps.ProjectDir, meta.DevcontainerDir)
	paths := workspacePaths{
		Dir:      dir,
		EnvFile:  filepath.Join(dir, meta.EnvFileName),
		Template: filepath.Join(dir, meta.TemplateFileName),
		Output:   filepath.Join(dir, meta.OutputFileName),
	}
	if cli.EnvFile != "" {
		paths.EnvFile = cli.EnvFile
	}
	if cli.Template != "" {
		paths.Template = cli.Template
	}
	if cli.Output != "" {
		paths.Output = cli.Output
	}
	return paths
}
