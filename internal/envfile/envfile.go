// Where: internal/envfile/envfile.go
// What: Flat KEY=VALUE mapping loader for the devcontainer .env file.
// Why: The launcher's substitution values come from a file users edit by hand,
//      so parsing must tolerate sloppy lines instead of rejecting the file.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Mapping holds the parsed environment configuration. Values are plain
// strings; duplicate keys resolve to the last occurrence.
type Mapping map[string]string

// Get returns the value for key, or fallback when the key is absent.
func (m Mapping) Get(key, fallback string) string {
	if value, ok := m[key]; ok {
		return value
	}
	return fallback
}

// Keys returns the mapping keys in unspecified order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}

// WarnFunc receives a diagnostic for each skipped malformed line.
type WarnFunc func(line int, text string)

// Parse reads KEY=VALUE lines from r. Blank lines and lines starting
// with '#' are ignored. Lines without '=' are reported through warn and
// skipped. Surrounding single or double quotes are stripped from values.
func Parse(r io.Reader, warn WarnFunc) (Mapping, error) {
	mapping := Mapping{}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			if warn != nil {
				warn(lineNum, line)
			}
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			if warn != nil {
				warn(lineNum, line)
			}
			continue
		}
		mapping[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return mapping, nil
}

// Load parses the env file at path. The error preserves os.IsNotExist
// semantics so callers can decide to scaffold a default file.
func Load(path string, warn WarnFunc) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mapping, err := Parse(f, warn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mapping, nil
}

// LoadOrCreate loads the env file at path, writing the default file
// first when none exists. The second return reports whether the default
// file was created by this call.
func LoadOrCreate(path string, warn WarnFunc) (Mapping, bool, error) {
	created := false
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, false, err
		}
		if err := WriteDefault(path); err != nil {
			return nil, false, err
		}
		created = true
	}

	mapping, err := Load(path, warn)
	if err != nil {
		return nil, created, err
	}
	return mapping, created, nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
