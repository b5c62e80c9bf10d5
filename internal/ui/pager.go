package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pagerModel scrolls pre-rendered content in a fullscreen viewport so
// large taxonomies stay browsable. q, esc, or ctrl+c closes it.
type pagerModel struct {
	viewport viewport.Model
	theme    *Theme
	title    string
	content  string
	ready    bool
}

func newPagerModel(theme *Theme, title, content string) pagerModel {
	return pagerModel{theme: theme, title: title, content: content}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		const headerHeight = 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	header := m.theme.Muted.Render(m.title + "  (↑/↓ scroll, q to close)")
	return header + "\n\n" + m.viewport.View()
}

// ShowPager displays content in a scrolling alt-screen viewport and
// blocks until the user closes it.
func ShowPager(theme *Theme, title, content string) error {
	p := tea.NewProgram(newPagerModel(theme, title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
