package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/notes/internal/model"
)

// Intents travel from the views up to the root model.

type selectMsg struct{ id string }

type deleteMsg struct{ id string }

type saveMsg struct{ edit model.Edit }

type newDraftMsg struct{}

type copiedMsg struct {
	what string
	err  error
}

type externalChangeMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
