package ui

import (
	"strings"

	"github.com/fraudneuron/neuronctl/internal/tree"
)

// RenderTree formats the hierarchy as an indented listing, one node per
// line in pre-order:
//
//	T0000 — tactics
//	  ├─ T2000 — themes
//	    ├─ TQ2300 — charity_schemes
func RenderTree(t *Theme, store *tree.Store) string {
	var b strings.Builder
	for depth, node := range store.Walk() {
		if depth > 0 {
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString(t.Branch.Render("├─ "))
		}
		b.WriteString(t.ID.Render(node.ID))
		b.WriteString(t.Muted.Render(" — "))
		b.WriteString(t.Title.Render(node.Title))
		b.WriteByte('\n')
	}
	return b.String()
}
