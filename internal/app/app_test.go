// Where: internal/app/app_test.go
// What: Tests for the dispatcher and miscellaneous commands.
// Why: Every command string must route to a handler and exit cleanly.
package app

import (
	"strings"
	"testing"
)

func TestRunVersionCommand(t *testing.T) {
	_, out, deps := newTestProject(t)

	if code := Run([]string{"version"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("version output is empty")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, _, deps := newTestProject(t)

	if code := Run([]string{"frobnicate"}, deps); code != 1 {
		t.Fatalf("expected exit 1 for unknown command, got %d", code)
	}
}

func TestRunNoArgsShowsStatus(t *testing.T) {
	_, out, deps := newTestProject(t)

	if code := Run(nil, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, "Config") || !strings.Contains(output, "Workspace") {
		t.Fatalf("status sections missing:\n%s", output)
	}
	if !strings.Contains(output, "devcontainer.template.json") {
		t.Fatalf("template path missing from status:\n%s", output)
	}
}

func TestRunScaffoldWritesTemplate(t *testing.T) {
	dir, out, deps := newTestProject(t)

	// The fixture already has a template; scaffold must refuse first.
	if code := Run([]string{"scaffold"}, deps); code != 1 {
		t.Fatalf("expected exit 1 without --force, got %d", code)
	}
	if code := Run([]string{"scaffold", "--force", "--service", "dev"}, deps); code != 0 {
		t.Fatalf("expected exit 0 with --force, got %d, output:\n%s", code, out.String())
	}

	generated := readTemplate(t, dir)
	if !strings.Contains(generated, `"service": "dev"`) {
		t.Fatalf("service flag not applied:\n%s", generated)
	}
	if !strings.Contains(generated, "__WORKSPACE_NAME__") {
		t.Fatalf("scaffold must keep placeholder tokens:\n%s", generated)
	}
}

func TestCompletionBash(t *testing.T) {
	_, out, deps := newTestProject(t)

	if code := Run([]string{"completion", "bash"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	output := out.String()
	if !strings.Contains(output, "complete -F _dbox_completion dbox") {
		t.Fatalf("bash completion script malformed:\n%s", output)
	}
	if !strings.Contains(output, "init") || !strings.Contains(output, "scaffold") {
		t.Fatalf("commands missing from completion:\n%s", output)
	}
}

func TestCompletionZsh(t *testing.T) {
	_, out, deps := newTestProject(t)

	if code := Run([]string{"completion", "zsh"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "#compdef dbox") {
		t.Fatalf("zsh completion script malformed:\n%s", out.String())
	}
}

func TestCompletionFish(t *testing.T) {
	_, out, deps := newTestProject(t)

	if code := Run([]string{"completion", "fish"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "complete -c dbox") {
		t.Fatalf("fish completion script malformed:\n%s", out.String())
	}
}
