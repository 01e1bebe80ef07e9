package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
	"github.com/obsidian-os/obsidian-shell/internal/pkg/filesystem"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

// FileLoader loads TOML configuration from ~/.config/obsidian-shell/config.toml
// (overridable via --config or OBSIDIAN_SHELL_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path keeps the default lookup.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file yields the built-in
// defaults and fields absent from the file keep their default values; a file
// that exists but cannot be parsed is an error.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := domain.DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Path reports the file Load will read.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv("OBSIDIAN_SHELL_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".config", "obsidian-shell", "config.toml")
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
