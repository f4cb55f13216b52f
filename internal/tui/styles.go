package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Faint(true)

	titleStyle    = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	emptyTitle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	emptyHintLine = badgeStyle.Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("12"))
)

// pane frames inner content; the border color marks keyboard focus.
func pane(inner string, width, height int, focused bool) string {
	st := paneStyle
	if focused {
		st = focusedPaneStyle
	}
	w := max(width-st.GetHorizontalBorderSize(), 1)
	h := max(height-st.GetVerticalBorderSize(), 1)
	return st.Width(w).Height(h).MaxHeight(height).Render(inner)
}

// emptyState centers a bold line and a hint badge in the given box.
func emptyState(width, height int, headline, hint string) string {
	block := emptyTitle.Render(headline)
	if hint != "" {
		block = lipgloss.JoinVertical(lipgloss.Center, block, emptyHintLine.Render(hint))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
