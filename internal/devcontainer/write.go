// Where: internal/devcontainer/write.go
// What: Generated config writer with post-write verification.
// Why: The file on disk is what the launcher reads, so verification re-reads it.
package devcontainer

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAndVerify validates content as a devcontainer document, writes it
// to path, then re-reads the written file and returns the required keys
// it is missing. A parse failure before or after the write is an error;
// missing keys are left to the caller to treat as warning or failure.
func WriteAndVerify(path, content string) ([]string, error) {
	if _, err := ParseDocument([]byte(content)); err != nil {
		return nil, fmt.Errorf("generated config is not valid JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", path, err)
	}
	doc, err := ParseDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", path, err)
	}
	return MissingKeys(doc), nil
}
