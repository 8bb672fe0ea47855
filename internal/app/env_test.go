// Where: internal/app/env_test.go
// What: Tests for the env show/export subcommands.
// Why: The exported mapping is the launcher's only window into .env values.
package app

import (
	"strings"
	"testing"
)

func TestEnvShowListsVariables(t *testing.T) {
	dir, out, deps := newTestProject(t)
	writeEnvFile(t, dir, "WORKSPACE_NAME=listed_ws\nAPI_PORT=5001\n")

	if code := Run([]string{"env", "show"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, "listed_ws") || !strings.Contains(output, "5001") {
		t.Fatalf("variables not listed:\n%s", output)
	}
}

func TestEnvShowFallsBackToDefaults(t *testing.T) {
	_, out, deps := newTestProject(t)

	if code := Run([]string{"env", "show"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, "showing defaults") {
		t.Fatalf("missing defaults notice:\n%s", output)
	}
	if !strings.Contains(output, "diamonds_project") {
		t.Fatalf("default workspace name not shown:\n%s", output)
	}
}

func TestEnvExportEmitsDotenvForm(t *testing.T) {
	dir, out, deps := newTestProject(t)
	writeEnvFile(t, dir, "WORKSPACE_NAME=export_ws\nVAULT_PORT=8200\n")

	if code := Run([]string{"env", "export"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, "export_ws") {
		t.Fatalf("workspace name not exported:\n%s", output)
	}
	if !strings.Contains(output, "VAULT_PORT=8200") {
		t.Fatalf("numeric value not exported:\n%s", output)
	}
}

func TestEnvBareCommandShowsMapping(t *testing.T) {
	dir, out, deps := newTestProject(t)
	writeEnvFile(t, dir, "WORKSPACE_NAME=bare_ws\n")

	if code := Run([]string{"env"}, deps); code != 0 {
		t.Fatalf("expected exit 0, got %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "bare_ws") {
		t.Fatalf("mapping not shown for bare env command:\n%s", out.String())
	}
}
