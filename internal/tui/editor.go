package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/notes/internal/model"
)

type editorKind int

const (
	editorLoading editorKind = iota
	editorEmpty
	editorDraft
	editorNote
)

// EditorView edits one note or a draft. It keeps its own copy of title and
// content, seeded whenever a different note (or a draft) is shown.
type EditorView struct {
	keys      keyMap
	kind      editorKind
	id        string
	updatedAt int64

	title   textinput.Model
	body    textarea.Model
	focused bool
	onBody  bool

	width  int
	height int
	now    func() time.Time
}

func newEditorView(keys keyMap) EditorView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Note title"
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Write your note here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle = ta.FocusedStyle
	ta.KeyMap.DeleteCharacterForward = key.NewBinding(key.WithKeys("delete"))

	return EditorView{keys: keys, title: ti, body: ta, now: time.Now}
}

// Show points the editor at n. Inputs are reset only when the note
// identity changes, so in-progress typing survives a save of the same note.
func (e *EditorView) Show(kind editorKind, n model.Note) {
	if kind != e.kind || n.ID != e.id {
		e.title.SetValue(n.Title)
		e.title.CursorEnd()
		e.body.SetValue(n.Content)
		e.onBody = false
	}
	e.kind, e.id, e.updatedAt = kind, n.ID, n.UpdatedAt
}

// Editable reports whether there is a form to type into.
func (e EditorView) Editable() bool { return e.kind == editorDraft || e.kind == editorNote }

func (e EditorView) IsDraft() bool { return e.kind == editorDraft }

// Values is the current content of the form.
func (e EditorView) Values() (title, content string) { return e.title.Value(), e.body.Value() }

func (e *EditorView) Focus() tea.Cmd {
	e.focused = true
	if e.onBody {
		e.title.Blur()
		return e.body.Focus()
	}
	e.body.Blur()
	return e.title.Focus()
}

func (e *EditorView) Blur() {
	e.focused = false
	e.title.Blur()
	e.body.Blur()
}

// FocusTitle moves the cursor to the title field.
func (e *EditorView) FocusTitle() tea.Cmd {
	e.onBody = false
	return e.Focus()
}

// Next moves from title to body; it reports false when already on the body.
func (e *EditorView) Next() (tea.Cmd, bool) {
	if e.onBody {
		return nil, false
	}
	e.onBody = true
	return e.Focus(), true
}

func (e *EditorView) SetSize(width, height int) {
	e.width, e.height = width, height
	e.title.Width = max(width-24, 8)
	e.body.SetWidth(max(width, 8))
	e.body.SetHeight(max(height-4, 1))
}

// edit builds the save intent: trimmed title with the default applied,
// and an identifier only for notes that already exist.
func (e EditorView) edit() model.Edit {
	title := model.NormalizeTitle(e.title.Value())
	content := e.body.Value()
	if e.kind == editorDraft {
		return model.NewNote{Title: title, Content: content}
	}
	return model.ExistingNote{ID: e.id, Title: title, Content: content}
}

func (e EditorView) Update(msg tea.Msg) (EditorView, tea.Cmd) {
	if !e.Editable() {
		return e, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, e.keys.Save):
			return e, emit(saveMsg{edit: e.edit()})
		case key.Matches(k, e.keys.Remove):
			if e.kind == editorNote {
				return e, emit(deleteMsg{id: e.id})
			}
			return e, nil
		case key.Matches(k, e.keys.Yank):
			return e, copyCmd(model.NormalizeTitle(e.title.Value()), e.body.Value())
		}
	}

	var cmd tea.Cmd
	if e.onBody {
		e.body, cmd = e.body.Update(msg)
	} else {
		e.title, cmd = e.title.Update(msg)
	}
	return e, cmd
}

func (e EditorView) View() string {
	switch e.kind {
	case editorLoading:
		return emptyState(e.width, e.height, "Loading…", "")
	case editorEmpty:
		return emptyState(e.width, e.height, "Select a note to get started", "Or create a new one")
	}

	actions := []string{accentStyle.Render("ctrl+s " + e.saveLabel())}
	if e.kind == editorNote {
		actions = append([]string{mutedStyle.Render("ctrl+d Delete")}, actions...)
	}
	head := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(e.title.View()), "  ", strings.Join(actions, "  "))

	stamp := e.now()
	if e.kind == editorNote && e.updatedAt > 0 {
		stamp = time.UnixMilli(e.updatedAt)
	}
	foot := emptyHintLine.Render("Auto date: " + stamp.Format("2006-01-02 15:04:05"))

	return lipgloss.JoinVertical(lipgloss.Left, head, "", e.body.View(), foot)
}

func (e EditorView) saveLabel() string {
	if e.kind == editorDraft {
		return "Create"
	}
	return "Save"
}
