// Where: internal/devcontainer/scaffold.go
// What: Starter template scaffolding.
// Why: Projects without a devcontainer.template.json need a valid starting point.
package devcontainer

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// ScaffoldConfig carries the values rendered into the starter template.
type ScaffoldConfig struct {
	ComposeFile  string
	Service      string
	ForwardPorts []int
}

// DefaultScaffoldConfig returns the stock starter template values,
// matching the ports of the default .env file.
func DefaultScaffoldConfig() ScaffoldConfig {
	return ScaffoldConfig{
		ComposeFile:  "docker-compose.yml",
		Service:      "workspace",
		ForwardPorts: []int{8545, 8556, 3001, 5001, 8081, 8200},
	}
}

// ScaffoldContent renders the starter devcontainer template.
func ScaffoldContent(cfg ScaffoldConfig) (string, error) {
	return renderTemplate("devcontainer.template.json.tmpl", cfg)
}

// WriteScaffold renders the starter template and writes it to path,
// creating parent directories as needed.
func WriteScaffold(path string, cfg ScaffoldConfig) error {
	content, err := ScaffoldContent(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
