// Package tui is the terminal front end: a header, a searchable list and
// an editor, wired to the app controller.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/model"
)

const (
	minListWidth = 28
	maxListWidth = 48
)

type focusArea int

const (
	focusList focusArea = iota
	focusEditor
)

// Options configure the root model.
type Options struct {
	// Mode is shown as a badge in the header, e.g. "local" or "remote".
	Mode string
	// Watch delivers a value whenever the notes changed outside this process.
	Watch <-chan struct{}
}

// Model is the root Bubble Tea model. Views emit intents as messages;
// only Update talks to the controller.
type Model struct {
	ctrl   *app.Controller
	keys   keyMap
	header Header
	list   ListView
	editor EditorView
	help   help.Model
	focus  focusArea
	watch  <-chan struct{}

	width  int
	height int
}

func New(ctrl *app.Controller, opt Options) Model {
	keys := defaultKeys()
	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle

	m := Model{
		ctrl:   ctrl,
		keys:   keys,
		header: newHeader(keys, opt.Mode),
		list:   newListView(keys),
		editor: newEditorView(keys),
		help:   h,
		watch:  opt.Watch,
		width:  80,
		height: 24,
	}
	m.layout()
	m.sync()
	return m
}

// Run starts the full-screen program and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, ctrl *app.Controller, opt Options) error {
	p := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return externalChangeMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.ctrl.Load(), waitForChange(m.watch), textarea.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case externalChangeMsg:
		return m, tea.Batch(m.ctrl.Reload(), waitForChange(m.watch))

	case selectMsg:
		m.ctrl.Select(msg.id)
		m.sync()
		return m, m.focusEditor()

	case deleteMsg:
		cmd := m.ctrl.Delete(msg.id)
		m.sync()
		return m, cmd

	case saveMsg:
		cmd := m.ctrl.Save(msg.edit)
		m.sync()
		return m, cmd

	case newDraftMsg:
		m.ctrl.StartDraft()
		m.sync()
		m.focus = focusEditor
		return m, m.editor.FocusTitle()

	case copiedMsg:
		m.ctrl.Notice("Copied "+msg.what, msg.err)
		return m, nil
	}

	if cmd, ok := m.ctrl.Handle(msg); ok {
		m.sync()
		return m, cmd
	}
	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.New) {
		var cmd tea.Cmd
		m.header, cmd = m.header.Update(msg)
		return m, cmd
	}

	switch m.focus {
	case focusList:
		if !m.list.Searching() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Focus):
				return m, m.focusEditor()
			}
		}
	case focusEditor:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.focusList()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			if cmd, moved := m.editor.Next(); moved {
				return m, cmd
			}
			m.focusList()
			return m, nil
		}
	}
	return m.forward(msg)
}

// forward hands msg to the focused pane.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusEditor() tea.Cmd {
	if !m.editor.Editable() {
		return nil
	}
	m.focus = focusEditor
	return m.editor.Focus()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.editor.Blur()
}

// sync pushes controller state into the views.
func (m *Model) sync() {
	sel := m.ctrl.Selection()
	active := ""
	if sel.IsNote() {
		active = sel.ID
	}
	m.list.SetNotes(m.ctrl.Notes(), active)

	switch {
	case m.ctrl.Phase() == app.PhaseLoading:
		m.editor.Show(editorLoading, model.Note{})
	case sel.Kind == app.SelectDraft:
		m.editor.Show(editorDraft, model.Note{})
	default:
		if n, ok := m.ctrl.Selected(); ok {
			m.editor.Show(editorNote, n)
		} else {
			m.editor.Show(editorEmpty, model.Note{})
		}
	}
	if m.focus == focusEditor && !m.editor.Editable() {
		m.focusList()
	}
}

func (m Model) listWidth() int {
	return min(max(m.width/3, minListWidth), maxListWidth)
}

func (m Model) bodyHeight() int {
	return max(m.height-3, 3)
}

func (m *Model) layout() {
	m.header.width = m.width
	m.help.Width = m.width

	lw := m.listWidth()
	h := m.bodyHeight()
	m.list.SetSize(lw-paneStyle.GetHorizontalFrameSize(), h-paneStyle.GetVerticalFrameSize())
	m.editor.SetSize(m.width-lw-paneStyle.GetHorizontalFrameSize(), h-paneStyle.GetVerticalFrameSize())
}

func (m Model) View() string {
	lw := m.listWidth()
	h := m.bodyHeight()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		pane(m.list.View(), lw, h, m.focus == focusList),
		pane(m.editor.View(), m.width-lw, h, m.focus == focusEditor),
	)

	var status string
	if st := m.ctrl.Status(); st.Text != "" {
		if st.Err {
			status = errorStyle.Render("✖ " + st.Text)
		} else {
			status = okStyle.Render("✔ " + st.Text)
		}
	}

	var keys help.KeyMap = listHelp{k: m.keys}
	if m.focus == focusEditor {
		keys = editorHelp{k: m.keys, draft: m.editor.IsDraft()}
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, status, m.help.View(keys))
}
