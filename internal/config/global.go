// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.dbox/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diamonds-dev/diamondbox/internal/constants"
	"github.com/diamonds-dev/diamondbox/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.dbox/config.yaml global configuration.
// It tracks workspaces that have been initialized and when.
type GlobalConfig struct {
	Version    int                       `yaml:"version"`
	Workspaces map[string]WorkspaceEntry `yaml:"workspaces,omitempty"`
}

// WorkspaceEntry stores a workspace's template path and last init time.
type WorkspaceEntry struct {
	Template string `yaml:"template,omitempty"`
	LastInit string `yaml:"last_init"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:    1,
		Workspaces: map[string]WorkspaceEntry{},
	}
}

// GlobalConfigPath returns the path to the global config file.
// DBOX_CONFIG_PATH overrides the file, DBOX_CONFIG_HOME the directory.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(constants.EnvConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(os.Getenv(constants.EnvConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	if cfg.Version == 0 {
		cfg.Version = DefaultGlobalConfig().Version
	}
	if cfg.Workspaces == nil {
		cfg.Workspaces = map[string]WorkspaceEntry{}
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// RecordWorkspace upserts the entry for a workspace directory after a
// successful init. Config write failures are returned but callers treat
// them as non-fatal: bookkeeping must not break the generated output.
func RecordWorkspace(dir, templatePath string, now time.Time) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		cfg = DefaultGlobalConfig()
	}

	cfg.Workspaces[dir] = WorkspaceEntry{
		Template: templatePath,
		LastInit: now.Format(time.RFC3339),
	}
	return SaveGlobalConfig(path, cfg)
}
