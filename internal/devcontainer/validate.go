// Where: internal/devcontainer/validate.go
// What: JSON well-formedness, required keys, and schema checks.
// Why: Catch a broken generated config before the editor tries to launch it.
package devcontainer

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/jsonc"
)

// RequiredKeys are the top-level fields a compose-based devcontainer
// config must carry for the editor to start it.
var RequiredKeys = []string{"name", "dockerComposeFile", "service", "workspaceFolder"}

//go:embed schema/devcontainer.schema.json
var schemaSource string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ParseDocument parses devcontainer JSON into a generic object. Comments
// and trailing commas are tolerated: devcontainer.json is JSONC by
// convention and templates routinely carry both.
func ParseDocument(content []byte) (map[string]any, error) {
	var value any
	if err := json.Unmarshal(jsonc.ToJSON(content), &value); err != nil {
		return nil, err
	}
	doc, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document is not a JSON object")
	}
	return doc, nil
}

// MissingKeys returns the required top-level keys absent from doc, in
// RequiredKeys order.
func MissingKeys(doc map[string]any) []string {
	var missing []string
	for _, key := range RequiredKeys {
		if _, ok := doc[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// ValidateSchema checks doc against the embedded devcontainer schema.
func ValidateSchema(doc map[string]any) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(any(doc)); err != nil {
		return fmt.Errorf("devcontainer schema: %w", err)
	}
	return nil
}

// ComposeFiles normalizes the dockerComposeFile field, which may be a
// single string or a list of paths.
func ComposeFiles(doc map[string]any) []string {
	switch value := doc["dockerComposeFile"].(type) {
	case string:
		if strings.TrimSpace(value) == "" {
			return nil
		}
		return []string{value}
	case []any:
		var files []string
		for _, entry := range value {
			if s, ok := entry.(string); ok && strings.TrimSpace(s) != "" {
				files = append(files, s)
			}
		}
		return files
	default:
		return nil
	}
}

// ServiceName returns the service field, or "" when absent or not a string.
func ServiceName(doc map[string]any) string {
	if s, ok := doc["service"].(string); ok {
		return s
	}
	return ""
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("devcontainer.schema.json", strings.NewReader(schemaSource)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("devcontainer.schema.json")
	})
	return compiledSchema, schemaErr
}
