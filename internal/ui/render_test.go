package ui

import (
	"testing"

	"github.com/fraudneuron/neuronctl/internal/tree"
)

func TestRenderTreePlain(t *testing.T) {
	t.Parallel()

	store := tree.New()
	steps := []struct{ parent, id, title string }{
		{"root", "T2000", "themes"},
		{"T2000", "TQ2300", "charity_schemes"},
		{"root", "T3000", "channels"},
	}
	for _, s := range steps {
		if _, err := store.Add(s.parent, s.id, s.title, ""); err != nil {
			t.Fatalf("Add(%s): %v", s.id, err)
		}
	}

	got := RenderTree(NewTheme(true), store)
	want := "T0000 — tactics\n" +
		"  ├─ T2000 — themes\n" +
		"    ├─ TQ2300 — charity_schemes\n" +
		"  ├─ T3000 — channels\n"
	if got != want {
		t.Errorf("RenderTree():\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTreeRootOnly(t *testing.T) {
	t.Parallel()

	got := RenderTree(NewTheme(true), tree.New())
	want := "T0000 — tactics\n"
	if got != want {
		t.Errorf("RenderTree(): got %q, want %q", got, want)
	}
}

func TestRenderTreePreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	store := tree.New()
	for _, id := range []string{"T3", "T1", "T2"} {
		if _, err := store.Add("root", id, id, ""); err != nil {
			t.Fatal(err)
		}
	}

	got := RenderTree(NewTheme(true), store)
	want := "T0000 — tactics\n" +
		"  ├─ T3 — T3\n" +
		"  ├─ T1 — T1\n" +
		"  ├─ T2 — T2\n"
	if got != want {
		t.Errorf("children must render in insertion order:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
