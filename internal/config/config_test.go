package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fraudneuron/neuronctl/internal/storage"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), Filename))
	if err != nil {
		t.Fatalf("Load() of a missing file should not error, got %v", err)
	}
	if cfg.Editor.Dataset != storage.DefaultFilename {
		t.Errorf("Dataset: got %q, want %q", cfg.Editor.Dataset, storage.DefaultFilename)
	}
	if !cfg.Editor.ConfirmDelete {
		t.Error("ConfirmDelete should default to true")
	}
	if cfg.Editor.NoColor || cfg.Editor.NonInteractive {
		t.Error("color and interactivity should default to on")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "editor:\n  dataset: taxonomy.json\n  no_color: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.Dataset != "taxonomy.json" {
		t.Errorf("Dataset: got %q, want %q", cfg.Editor.Dataset, "taxonomy.json")
	}
	if !cfg.Editor.NoColor {
		t.Error("NoColor should be true")
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Editor.ConfirmDelete {
		t.Error("ConfirmDelete should keep its default")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "editor: [unclosed\n")
	cfg, err := Load(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("Load(): got %v, want ErrInvalidYAML", err)
	}
	if cfg == nil || cfg.Editor.Dataset != storage.DefaultFilename {
		t.Error("invalid YAML should fall back to full defaults")
	}
}

func TestLoadEmptyDatasetFallsBack(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "editor:\n  dataset: \"\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.Dataset != storage.DefaultFilename {
		t.Errorf("empty dataset should fall back to %q, got %q",
			storage.DefaultFilename, cfg.Editor.Dataset)
	}
}
