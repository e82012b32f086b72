package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/glot-go/assets"
	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/pkg/filesystem"
	"github.com/doeshing/glot-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.glot/config.yaml
// (overridable via GLOT_CONFIG). The file is re-read on every Load so
// edits take effect on the next command.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing config file is seeded
// from the embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, 0o600); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("GLOT_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".glot", "config.yaml")
}

// Default returns the embedded default configuration.
func Default() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.API.SnippetsURL == "" {
		cfg.API.SnippetsURL = "https://snippets.glot.io"
	}
	if cfg.API.RunURL == "" {
		cfg.API.RunURL = "https://run.glot.io"
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = "sqlite"
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
