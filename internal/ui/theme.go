// Package ui implements the terminal front of the editor: lipgloss
// theming, hierarchy rendering, TTY detection, and the huh-backed
// prompter driving the interactive session.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand palette (dark-terminal values).
const (
	colorPrimary = "#D97706"
	colorSuccess = "#059669"
	colorError   = "#DC2626"
	colorMuted   = "#6B7280"
	colorText    = "#E5E7EB"
)

// Theme bundles the lipgloss styles used across the UI. With NoColor set
// every style is a no-op, for dumb terminals and piped output.
type Theme struct {
	NoColor bool

	ID      lipgloss.Style
	Title   lipgloss.Style
	Branch  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme builds the default theme.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor}
	if noColor {
		plain := lipgloss.NewStyle()
		t.ID = plain
		t.Title = plain
		t.Branch = plain
		t.Muted = plain
		t.Success = plain
		t.Error = plain
		return t
	}
	t.ID = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary)).Bold(true)
	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(colorText))
	t.Branch = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
	return t
}

// HuhTheme derives the form theme from the brand palette.
func (t *Theme) HuhTheme() *huh.Theme {
	base := huh.ThemeBase()
	if t.NoColor {
		return base
	}

	primary := lipgloss.AdaptiveColor{Light: "#B45309", Dark: colorPrimary}
	green := lipgloss.AdaptiveColor{Light: "#047857", Dark: colorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: colorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: colorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: colorMuted}

	base.Focused.Title = base.Focused.Title.Foreground(primary).Bold(true)
	base.Focused.Description = base.Focused.Description.Foreground(muted)
	base.Focused.ErrorIndicator = base.Focused.ErrorIndicator.Foreground(red)
	base.Focused.ErrorMessage = base.Focused.ErrorMessage.Foreground(red)
	base.Focused.SelectSelector = base.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	base.Focused.Option = base.Focused.Option.Foreground(text)
	base.Focused.SelectedOption = base.Focused.SelectedOption.Foreground(green)
	base.Focused.TextInput.Cursor = base.Focused.TextInput.Cursor.Foreground(primary)
	base.Focused.TextInput.Prompt = base.Focused.TextInput.Prompt.Foreground(primary)
	return base
}
