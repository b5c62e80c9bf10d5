// Package storage loads and saves the taxonomy tree as a JSON document.
// A missing or malformed dataset is never fatal: loading falls back to a
// fresh root-only skeleton so a session can always start.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fraudneuron/neuronctl/internal/tree"
)

// DefaultFilename is the conventional dataset name in the working
// directory when no path is given.
const DefaultFilename = "fraudneuron.json"

// ErrMalformedStorage indicates the dataset file exists but could not be
// parsed or validated. Load recovers by substituting a fresh skeleton;
// callers surface this as a warning, not a failure.
var ErrMalformedStorage = errors.New("storage: dataset file is malformed")

// Load reads the dataset at path. An absent file yields a fresh skeleton
// and a nil error. A file that cannot be read, parsed, or validated also
// yields a fresh skeleton, plus an error wrapping ErrMalformedStorage.
// The returned store is usable in every case.
func Load(path string) (*tree.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("dataset not found, starting fresh", "path", path)
			return tree.New(), nil
		}
		slog.Warn("dataset unreadable, starting fresh", "path", path, "error", err)
		return tree.New(), fmt.Errorf("read %s: %w", path, ErrMalformedStorage)
	}

	var root tree.Node
	if err := json.Unmarshal(data, &root); err != nil {
		slog.Warn("dataset is not valid JSON, starting fresh", "path", path, "error", err)
		return tree.New(), fmt.Errorf("parse %s: %w", path, ErrMalformedStorage)
	}

	store, err := tree.FromRoot(&root)
	if err != nil {
		slog.Warn("dataset failed validation, starting fresh", "path", path, "error", err)
		return tree.New(), fmt.Errorf("validate %s: %w", path, ErrMalformedStorage)
	}
	slog.Debug("dataset loaded", "path", path, "nodes", store.Size())
	return store, nil
}

// Save writes the tree to path as UTF-8 JSON with 2-space indentation,
// overwriting any existing file.
func Save(store *tree.Store, path string) error {
	data, err := json.MarshalIndent(store.Root(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Debug("dataset saved", "path", path, "nodes", store.Size())
	return nil
}
