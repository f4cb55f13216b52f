package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Header is the static action bar. Its only action starts a draft.
type Header struct {
	keys  keyMap
	mode  string
	width int
}

func newHeader(keys keyMap, mode string) Header {
	return Header{keys: keys, mode: mode}
}

func (h Header) Update(msg tea.Msg) (Header, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, h.keys.New) {
		return h, emit(newDraftMsg{})
	}
	return h, nil
}

func (h Header) View() string {
	left := lipgloss.JoinHorizontal(lipgloss.Center, brandStyle.Render("◆ Notes"), " ", badgeStyle.Render(h.mode))
	right := accentStyle.Render("+ New Note") + mutedStyle.Render(" (ctrl+n)")
	gap := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
