package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fraudneuron/neuronctl/internal/config"
	"github.com/fraudneuron/neuronctl/internal/storage"
	"github.com/fraudneuron/neuronctl/internal/tree"
)

// writeDataset saves a small taxonomy and returns its path.
func writeDataset(t *testing.T, dir string) string {
	t.Helper()
	store := tree.New()
	if _, err := store.Add("root", "T2000", "themes", "fraud themes"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Add("T2000", "TQ2300", "charity_schemes", ""); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "fraudneuron.json")
	if err := storage.Save(store, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestDatasetPath(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	if got := datasetPath(nil, cfg); got != storage.DefaultFilename {
		t.Errorf("no args: got %q, want %q", got, storage.DefaultFilename)
	}
	if got := datasetPath([]string{"custom.json"}, cfg); got != "custom.json" {
		t.Errorf("positional arg: got %q, want %q", got, "custom.json")
	}
}

func TestValidateAddFlags(t *testing.T) {
	tests := []struct {
		name    string
		parent  string
		id      string
		wantErr string
	}{
		{"missing parent", "", "T1", "--parent is required"},
		{"missing id", "root", "", "--id is required"},
		{"both present", "root", "T1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := addCmd.Flags().Set("parent", tt.parent); err != nil {
				t.Fatal(err)
			}
			if err := addCmd.Flags().Set("id", tt.id); err != nil {
				t.Fatal(err)
			}
			defer resetAddFlags(t)

			err := validateAddFlags(addCmd, nil)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func resetAddFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{"parent", "id", "title", "description", "parent-title", "parent-description"} {
		if err := addCmd.Flags().Set(name, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := addCmd.Flags().Set("create-parent", "false"); err != nil {
		t.Fatal(err)
	}
}

func TestRunShowPrintsHierarchy(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir)
	t.Chdir(dir)

	var out bytes.Buffer
	showCmd.SetOut(&out)
	defer showCmd.SetOut(nil)

	if err := runShow(showCmd, []string{path}); err != nil {
		t.Fatalf("runShow error: %v", err)
	}
	for _, want := range []string{"T0000 — tactics", "T2000 — themes", "TQ2300 — charity_schemes"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunShowRecoversFromMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fraudneuron.json")
	if err := writeFile(path, "{broken"); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	showCmd.SetOut(&out)
	showCmd.SetErr(&errOut)
	defer func() {
		showCmd.SetOut(nil)
		showCmd.SetErr(nil)
	}()

	if err := runShow(showCmd, []string{path}); err != nil {
		t.Fatalf("runShow must not fail on a malformed dataset: %v", err)
	}
	if !strings.Contains(out.String(), "T0000 — tactics") {
		t.Errorf("recovery should print the skeleton, got:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "warning") {
		t.Errorf("recovery should warn on stderr, got:\n%s", errOut.String())
	}
}

func TestRunAddCmdAutocreate(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir)
	t.Chdir(dir)

	flags := map[string]string{
		"parent":        "T9999",
		"id":            "TQ9999",
		"title":         "new technique",
		"create-parent": "true",
		"parent-title":  "placeholder",
	}
	for name, val := range flags {
		if err := addCmd.Flags().Set(name, val); err != nil {
			t.Fatal(err)
		}
	}
	defer resetAddFlags(t)

	var out bytes.Buffer
	addCmd.SetOut(&out)
	defer addCmd.SetOut(nil)

	if err := runAddCmd(addCmd, []string{path}); err != nil {
		t.Fatalf("runAddCmd error: %v", err)
	}

	loaded, err := storage.Load(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	parent, err := loaded.Find("T9999")
	if err != nil {
		t.Fatalf("autocreated parent missing: %v", err)
	}
	if len(parent.Children) != 1 || parent.Children[0].ID != "TQ9999" {
		t.Error("entry should hang under the autocreated parent")
	}
}

func TestRunAddCmdMissingParentWithoutCreate(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir)
	t.Chdir(dir)

	for name, val := range map[string]string{"parent": "T9999", "id": "TQ9999"} {
		if err := addCmd.Flags().Set(name, val); err != nil {
			t.Fatal(err)
		}
	}
	defer resetAddFlags(t)

	err := runAddCmd(addCmd, []string{path})
	if err == nil || !strings.Contains(err.Error(), "--create-parent") {
		t.Errorf("got %v, want missing-parent error suggesting --create-parent", err)
	}
}

func TestRunDeleteCmd(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir)
	t.Chdir(dir)

	for name, val := range map[string]string{"id": "T2000", "yes": "true"} {
		if err := deleteCmd.Flags().Set(name, val); err != nil {
			t.Fatal(err)
		}
	}
	defer resetDeleteFlags(t)

	var out bytes.Buffer
	deleteCmd.SetOut(&out)
	defer deleteCmd.SetOut(nil)

	if err := runDeleteCmd(deleteCmd, []string{path}); err != nil {
		t.Fatalf("runDeleteCmd error: %v", err)
	}

	loaded, err := storage.Load(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if loaded.Size() != 1 {
		t.Errorf("subtree should be gone, got %d nodes", loaded.Size())
	}
}

func TestRunDeleteCmdRootProtected(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir)
	t.Chdir(dir)

	for name, val := range map[string]string{"id": "root", "yes": "true"} {
		if err := deleteCmd.Flags().Set(name, val); err != nil {
			t.Fatal(err)
		}
	}
	defer resetDeleteFlags(t)

	err := runDeleteCmd(deleteCmd, []string{path})
	if err == nil || !strings.Contains(err.Error(), "root node cannot be deleted") {
		t.Errorf("got %v, want root-protection error", err)
	}

	loaded, loadErr := storage.Load(path)
	if loadErr != nil {
		t.Fatal(loadErr)
	}
	if loaded.Size() != 3 {
		t.Errorf("dataset must be untouched, got %d nodes", loaded.Size())
	}
}

func resetDeleteFlags(t *testing.T) {
	t.Helper()
	if err := deleteCmd.Flags().Set("id", ""); err != nil {
		t.Fatal(err)
	}
	if err := deleteCmd.Flags().Set("yes", "false"); err != nil {
		t.Fatal(err)
	}
}
