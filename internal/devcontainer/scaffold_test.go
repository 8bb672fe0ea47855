// Where: internal/devcontainer/scaffold_test.go
// What: Tests for the starter template scaffold.
// Why: A scaffolded template must pass the init pipeline unmodified.
package devcontainer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScaffoldContentRendersThroughInitPipeline(t *testing.T) {
	content, err := ScaffoldContent(DefaultScaffoldConfig())
	if err != nil {
		t.Fatalf("scaffold content: %v", err)
	}

	if !strings.Contains(content, TokenWorkspaceName) || !strings.Contains(content, TokenDiamondName) {
		t.Fatalf("scaffold is missing placeholder tokens:\n%s", content)
	}

	rendered := Render(content, Substitutions{WorkspaceName: "diamonds_project", DiamondName: "ExampleDiamond"})
	doc, err := ParseDocument([]byte(rendered))
	if err != nil {
		t.Fatalf("rendered scaffold does not parse: %v", err)
	}
	if missing := MissingKeys(doc); len(missing) != 0 {
		t.Fatalf("rendered scaffold is missing keys: %v", missing)
	}
	if err := ValidateSchema(doc); err != nil {
		t.Fatalf("rendered scaffold fails schema: %v", err)
	}
	if doc["service"] != "workspace" {
		t.Fatalf("unexpected service: %v", doc["service"])
	}
}

func TestScaffoldConfigOverrides(t *testing.T) {
	cfg := DefaultScaffoldConfig()
	cfg.Service = "dev"
	cfg.ComposeFile = "compose/dev.yml"

	content, err := ScaffoldContent(cfg)
	if err != nil {
		t.Fatalf("scaffold content: %v", err)
	}
	if !strings.Contains(content, `"service": "dev"`) {
		t.Fatalf("service override not rendered:\n%s", content)
	}
	if !strings.Contains(content, `"dockerComposeFile": "compose/dev.yml"`) {
		t.Fatalf("compose file override not rendered:\n%s", content)
	}
}

func TestWriteScaffold(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".devcontainer", "devcontainer.template.json")

	if err := WriteScaffold(path, DefaultScaffoldConfig()); err != nil {
		t.Fatalf("write scaffold: %v", err)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scaffold: %v", err)
	}
	if !strings.Contains(string(payload), "forwardPorts") {
		t.Fatalf("scaffold is missing forwardPorts:\n%s", payload)
	}
}
