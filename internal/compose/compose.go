// Where: internal/compose/compose.go
// What: Minimal docker-compose file reader for cross-checks.
// Why: The generated config names a compose service; verify it actually exists.
package compose

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// File is the subset of a compose file this tool inspects.
type File struct {
	Services map[string]Service `yaml:"services"`
}

// Service is the subset of a compose service definition this tool inspects.
type Service struct {
	Image   string   `yaml:"image"`
	Ports   []string `yaml:"ports"`
	EnvFile any      `yaml:"env_file"`
}

//go:embed schema/compose.schema.json
var schemaSource string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Load reads and parses the compose file at path.
func Load(path string) (File, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	if err := validateShape(payload); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// HasService reports whether the compose file defines the named service.
func (f File) HasService(name string) bool {
	_, ok := f.Services[name]
	return ok
}

// ServiceNames returns the defined service names, sorted.
func (f File) ServiceNames() []string {
	names := make([]string, 0, len(f.Services))
	for name := range f.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateShape converts the compose YAML to JSON and checks it against
// the embedded structural schema before field decoding.
func validateShape(content []byte) error {
	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	sch, err := loadSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("compose schema: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("compose.schema.json", strings.NewReader(schemaSource)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("compose.schema.json")
	})
	return compiledSchema, schemaErr
}
