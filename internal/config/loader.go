package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/exgen-dev/exgen/internal/defs"
)

// maxConfigSize caps config file reads at 10 MiB.
const maxConfigSize = 10 * 1024 * 1024

// Load reads the configuration file at path and returns it merged over
// the built-in defaults. A missing file is not an error: the defaults
// are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config %s: %w", path, ErrConfigTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the per-user configuration file location,
// $XDG_CONFIG_HOME/exgen/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "exgen", defs.ConfigYAML), nil
}

// LoadDefault loads the configuration from DefaultPath.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
