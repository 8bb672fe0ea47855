// Where: internal/app/selector.go
// What: Interactive input prompter using the huh library.
// Why: Keyboard-driven entry for init --interactive.
package app

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the interaction.Prompter interface using the
// huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}
