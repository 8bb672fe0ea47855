// Where: internal/envfile/envfile_test.go
// What: Tests for env file parsing and default scaffolding.
// Why: Hand-edited files must load predictably, including sloppy input.
package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBasicLines(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"",
		"WORKSPACE_NAME=diamonds_project",
		"DIAMOND_NAME='ExampleDiamond'",
		`VAULT_PORT="8200"`,
		"SPACED = padded value ",
	}, "\n")

	mapping, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	expected := map[string]string{
		"WORKSPACE_NAME": "diamonds_project",
		"DIAMOND_NAME":   "ExampleDiamond",
		"VAULT_PORT":     "8200",
		"SPACED":         "padded value",
	}
	for key, want := range expected {
		if got := mapping[key]; got != want {
			t.Fatalf("key %s: expected %q, got %q", key, want, got)
		}
	}
	if len(mapping) != len(expected) {
		t.Fatalf("unexpected mapping size: %d", len(mapping))
	}
}

func TestParseSkipsMalformedLinesWithWarning(t *testing.T) {
	input := "GOOD=1\nno equals sign here\n=missing key\nALSO_GOOD=2\n"

	var warned []int
	warn := func(line int, _ string) {
		warned = append(warned, line)
	}

	mapping, err := Parse(strings.NewReader(input), warn)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(mapping) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(mapping))
	}
	if len(warned) != 2 || warned[0] != 2 || warned[1] != 3 {
		t.Fatalf("unexpected warnings: %v", warned)
	}
}

func TestParseLastWriteWins(t *testing.T) {
	mapping, err := Parse(strings.NewReader("KEY=first\nKEY=second\n"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if mapping["KEY"] != "second" {
		t.Fatalf("expected last value to win, got %q", mapping["KEY"])
	}
}

func TestParseValueWithEqualsSign(t *testing.T) {
	input := "VAULT_COMMAND=server -dev -dev-root-token-id=root\n"
	mapping, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := mapping["VAULT_COMMAND"]; got != "server -dev -dev-root-token-id=root" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestLoadMissingFileReportsNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ".env"), nil)
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".devcontainer", ".env")

	mapping, created, err := LoadOrCreate(path, nil)
	if err != nil {
		t.Fatalf("load or create: %v", err)
	}
	if !created {
		t.Fatalf("expected default file to be created")
	}
	if got := mapping["WORKSPACE_NAME"]; got != "diamonds_project" {
		t.Fatalf("unexpected default workspace name: %q", got)
	}
	if got := mapping["DIAMOND_NAME"]; got != "ExampleDiamond" {
		t.Fatalf("unexpected default diamond name: %q", got)
	}
	if got := mapping["HARDHAT_PORT"]; got != "8545" {
		t.Fatalf("unexpected hardhat port: %q", got)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created file: %v", err)
	}
	if !strings.Contains(string(payload), "# Diamonds DevContainer Configuration") {
		t.Fatalf("default file is missing its banner:\n%s", payload)
	}

	// Second call loads the existing file without recreating it.
	_, created, err = LoadOrCreate(path, nil)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if created {
		t.Fatalf("expected existing file to be reused")
	}
}

func TestDefaultContentCoversAllKeys(t *testing.T) {
	content, err := DefaultContent()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}

	for _, key := range []string{
		"WORKSPACE_NAME", "DIAMOND_NAME", "VAULT_COMMAND", "VAULT_PORT",
		"HARDHAT_PORT", "ADDITIONAL_BLOCKCHAIN_PORT", "FRONTEND_PORT",
		"API_PORT", "DOC_PORT",
	} {
		if !strings.Contains(content, key+"=") {
			t.Fatalf("default content is missing %s:\n%s", key, content)
		}
	}
	if !strings.Contains(content, "VAULT_PORT=8200") {
		t.Fatalf("unexpected vault port in:\n%s", content)
	}
}

func TestMappingGetFallback(t *testing.T) {
	mapping := Mapping{"PRESENT": "value"}
	if got := mapping.Get("PRESENT", "fallback"); got != "value" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := mapping.Get("ABSENT", "fallback"); got != "fallback" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}
