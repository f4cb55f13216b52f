package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New    key.Binding
	Open   key.Binding
	Search key.Binding
	Delete key.Binding
	Copy   key.Binding
	Yank   key.Binding
	Save   key.Binding
	Remove key.Binding
	Focus  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new note")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Yank:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Remove: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete note")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// listHelp and editorHelp implement help.KeyMap for the focused pane.
type listHelp struct{ k keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.New, h.k.Open, h.k.Search, h.k.Delete, h.k.Copy, h.k.Focus, h.k.Quit}
}
func (h listHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type editorHelp struct {
	k     keyMap
	draft bool
}

func (h editorHelp) ShortHelp() []key.Binding {
	b := []key.Binding{h.k.Save, h.k.Focus, h.k.Back, h.k.New}
	if !h.draft {
		b = append(b, h.k.Remove, h.k.Yank)
	}
	return b
}
func (h editorHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
