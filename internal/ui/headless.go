package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether interactive prompts are available.
// Headless mode is forced by configuration or detected from the TTY
// state of stdin.
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a manager using automatic TTY detection.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless reports whether the UI must not open interactive prompts.
// A forced override wins; otherwise stdin is checked for a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection in either direction.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
