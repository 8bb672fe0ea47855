// Where: internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/diamonds-dev/diamondbox/internal/meta"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

// completionModel extracts the visible command tree from the kong model.
func completionModel(cli CLI) ([]string, map[string][]string) {
	parser, _ := kong.New(&cli)

	var commands []string
	subcommands := make(map[string][]string)
	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		commands = append(commands, node.Name)
		var subs []string
		for _, sub := range node.Children {
			if sub.Hidden {
				continue
			}
			subs = append(subs, sub.Name)
		}
		if len(subs) > 0 {
			subcommands[node.Name] = subs
		}
	}
	return commands, subcommands
}

func runCompletionBash(cli CLI, out io.Writer) int {
	commands, subcommands := completionModel(cli)

	var caseParts []string
	for cmd, subs := range subcommands {
		part := fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(subs, " "))
		caseParts = append(caseParts, part)
	}

	script := `_%[1]s_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%[2]s"

    case "${prev}" in
%[3]s
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
}
complete -F _%[1]s_completion %[1]s
`
	fmt.Fprintf(out, script, meta.AppName, strings.Join(commands, " "), strings.Join(caseParts, "\n"))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	commands, subcommands := completionModel(cli)

	var caseParts []string
	for cmd, subs := range subcommands {
		part := fmt.Sprintf(`        %s)
            _values '%s subcommands' %s
            return
            ;;`, cmd, cmd, strings.Join(subs, " "))
		caseParts = append(caseParts, part)
	}

	script := `#compdef %[1]s
_%[1]s_completion() {
    local -a commands
    commands=(
        %[2]s
    )
    local cmd="${words[2]}"
    case "${cmd}" in
%[3]s
    esac
    _describe 'commands' commands
}
compdef _%[1]s_completion %[1]s
`
	fmt.Fprintf(out, script, meta.AppName, strings.Join(commands, "\n        "), strings.Join(caseParts, "\n"))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	parser, _ := kong.New(&cli)
	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		fmt.Fprintf(out, "complete -c %s -f -n __fish_use_subcommand -a %s -d '%s'\n",
			meta.AppName, node.Name, node.Help)
		for _, sub := range node.Children {
			if sub.Hidden {
				continue
			}
			fmt.Fprintf(out, "complete -c %s -f -n '__fish_seen_subcommand_from %s' -a %s -d '%s'\n",
				meta.AppName, node.Name, sub.Name, sub.Help)
		}
	}
	return 0
}
