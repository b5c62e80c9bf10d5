// Package config loads editor settings from .neuronctl.yaml in the
// working directory. Missing files use defaults; invalid YAML falls back
// to defaults with a warning rather than aborting the editor.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fraudneuron/neuronctl/internal/storage"
)

// Filename is the settings file looked up in the working directory.
const Filename = ".neuronctl.yaml"

// ErrInvalidYAML indicates invalid YAML syntax in the settings file.
var ErrInvalidYAML = errors.New("config: invalid YAML syntax")

// Config is the root settings aggregate.
type Config struct {
	Editor EditorConfig `yaml:"editor"`
}

// EditorConfig holds the editor section of the settings file.
type EditorConfig struct {
	// Dataset is the default dataset path when no positional argument
	// is given.
	Dataset string `yaml:"dataset"`
	// NoColor disables all ANSI styling.
	NoColor bool `yaml:"no_color"`
	// NonInteractive forces headless mode regardless of TTY state.
	NonInteractive bool `yaml:"non_interactive"`
	// ConfirmDelete asks before each deletion.
	ConfirmDelete bool `yaml:"confirm_delete"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{Editor: EditorConfig{
		Dataset:       storage.DefaultFilename,
		ConfirmDelete: true,
	}}
}

// Load reads the settings at path and merges them over the defaults, so
// absent keys keep their default values. A missing file returns defaults
// with a nil error; unreadable or invalid files return defaults plus an
// error the caller logs and ignores.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		// cfg may be partially written by a failed unmarshal.
		return Default(), fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}
	if cfg.Editor.Dataset == "" {
		cfg.Editor.Dataset = storage.DefaultFilename
	}
	return cfg, nil
}
