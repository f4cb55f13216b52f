package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/notes/internal/model"
)

// snippetWidth caps the content preview under each title, in terminal cells.
const snippetWidth = 90

// noteItem adapts model.Note to bubbles/list.Item.
type noteItem struct {
	note   model.Note
	active bool // the note open in the editor
}

func (i noteItem) FilterValue() string { return i.note.Title }

// snippet renders content on one line: newlines become spaces, and text
// wider than the limit is cut there and followed by "…".
func snippet(content string, width int) string {
	s := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(content)
	limit := min(width, snippetWidth)
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	return runewidth.Truncate(s, limit, "") + "…"
}

// noteDelegate renders two lines per note: title and date, then a snippet.
type noteDelegate struct{}

func (d noteDelegate) Height() int                               { return 2 }
func (d noteDelegate) Spacing() int                              { return 1 }
func (d noteDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d noteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(noteItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render(">") + " "
	}
	title := titleStyle.Render(it.note.DisplayTitle())
	if it.active {
		title = activeStyle.Render("● " + it.note.DisplayTitle())
	}
	date := mutedStyle.Render(it.note.Modified().Format("2006-01-02"))
	width := max(m.Width()-5, 10) // room for the ellipsis

	fmt.Fprintf(w, "%s%s  %s\n", prefix, title, date)
	fmt.Fprint(w, "  "+mutedStyle.Render(snippet(it.note.Content, width)))
}

// ListView is the searchable note list. It owns the search query.
type ListView struct {
	keys      keyMap
	search    textinput.Model
	list      list.Model
	notes     []model.Note
	active    string
	searching bool
	width     int
	height    int
}

func newListView(keys keyMap) ListView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search notes..."
	ti.CharLimit = 200

	l := list.New(nil, noteDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = helpStyle

	return ListView{keys: keys, search: ti, list: l}
}

// SetNotes replaces the collection being projected and the active note.
func (v *ListView) SetNotes(notes []model.Note, active string) {
	v.notes = notes
	v.active = active
	v.refresh()
}

// Query is the current search text.
func (v ListView) Query() string { return v.search.Value() }

// Searching reports whether the search box has the keyboard.
func (v ListView) Searching() bool { return v.searching }

// Visible is the filtered projection, in collection order.
func (v ListView) Visible() []model.Note { return model.Filter(v.notes, v.search.Value()) }

// Cursor is the note under the list cursor.
func (v ListView) Cursor() (model.Note, bool) {
	it, ok := v.list.SelectedItem().(noteItem)
	if !ok {
		return model.Note{}, false
	}
	return it.note, true
}

func (v *ListView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.search.Width = max(width-4, 1)
	v.list.SetSize(width, max(height-2, 1))
}

func (v *ListView) refresh() {
	prev, hadPrev := v.Cursor()

	visible := v.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, n := range visible {
		items = append(items, noteItem{note: n, active: n.ID == v.active})
	}
	v.list.SetItems(items)

	if hadPrev {
		for i, n := range visible {
			if n.ID == prev.ID {
				v.list.Select(i)
				return
			}
		}
	}
	for i, n := range visible {
		if n.ID == v.active {
			v.list.Select(i)
			return
		}
	}
}

func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

func (v ListView) Update(msg tea.Msg) (ListView, tea.Cmd) {
	if v.searching {
		if k, ok := msg.(tea.KeyMsg); ok && (k.Type == tea.KeyEsc || k.Type == tea.KeyEnter) {
			v.searching = false
			v.search.Blur()
			return v, nil
		}
		before := v.search.Value()
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		if v.search.Value() != before {
			v.refresh()
		}
		return v, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, v.keys.Search):
			v.searching = true
			return v, v.search.Focus()
		case key.Matches(k, v.keys.Open):
			if n, ok := v.Cursor(); ok {
				return v, emit(selectMsg{id: n.ID})
			}
			return v, nil
		case key.Matches(k, v.keys.Delete):
			if n, ok := v.Cursor(); ok {
				return v, emit(deleteMsg{id: n.ID})
			}
			return v, nil
		case key.Matches(k, v.keys.Copy):
			if n, ok := v.Cursor(); ok {
				return v, copyCmd(n.DisplayTitle(), n.Content)
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v ListView) View() string {
	header := v.search.View()
	if len(v.list.Items()) == 0 {
		return header + "\n\n" + emptyState(max(v.width, 1), max(v.height-2, 1), "No notes found", "Try a different search")
	}
	return header + "\n\n" + v.list.View()
}
