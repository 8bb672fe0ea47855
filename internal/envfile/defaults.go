// Where: internal/envfile/defaults.go
// What: Default .env scaffolding.
// Why: First runs need a working configuration before the user has edited anything.
package envfile

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/diamonds-dev/diamondbox/internal/meta"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Scaffold carries the values rendered into the default .env file.
type Scaffold struct {
	WorkspaceName            string
	DiamondName              string
	VaultCommand             string
	VaultPort                int
	HardhatPort              int
	AdditionalBlockchainPort int
	FrontendPort             int
	APIPort                  int
	DocPort                  int
}

// DefaultScaffold returns the stock values written when no .env exists.
func DefaultScaffold() Scaffold {
	return Scaffold{
		WorkspaceName:            meta.DefaultWorkspaceName,
		DiamondName:              meta.DefaultDiamondName,
		VaultCommand:             "server -dev -dev-root-token-id=root -dev-listen-address=0.0.0.0:8200",
		VaultPort:                8200,
		HardhatPort:              8545,
		AdditionalBlockchainPort: 8556,
		FrontendPort:             3001,
		APIPort:                  5001,
		DocPort:                  8081,
	}
}

// DefaultContent renders the default .env file content.
func DefaultContent() (string, error) {
	return renderTemplate("default.env.tmpl", DefaultScaffold())
}

// WriteDefault writes the default .env file to path, creating parent
// directories as needed.
func WriteDefault(path string) error {
	content, err := DefaultContent()
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
