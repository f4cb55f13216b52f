package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/store/kv"
	"github.com/idilsaglam/notes/internal/store/local"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newTestModel(t *testing.T, seed ...model.NewNote) (Model, *app.Controller, *local.Store) {
	t.Helper()
	log, _ := test.NewNullLogger()
	clock := time.Unix(1700000000, 0)
	s := local.New(kv.NewMemory(), log, local.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))
	for _, n := range seed {
		_, err := s.Create(context.Background(), n.Title, n.Content)
		require.NoError(t, err)
	}
	ctrl := app.New(context.Background(), s, log)
	m := New(ctrl, Options{Mode: "local"})
	return m, ctrl, s
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// settle feeds the result of an immediate command (intent or store call) back in.
func settle(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func loaded(t *testing.T, m Model, ctrl *app.Controller) Model {
	t.Helper()
	m, _ = update(t, m, ctrl.Load()())
	return m
}

func TestModel_ShowsLoadingUntilFirstList(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "a"})
	assert.Contains(t, m.View(), "Loading…")

	m = loaded(t, m, ctrl)
	assert.NotContains(t, m.View(), "Loading…")
	assert.Equal(t, app.PhaseReady, ctrl.Phase())
}

func TestModel_EmptyStateWhenNothingSelected(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m = loaded(t, m, ctrl)

	view := m.View()
	assert.Contains(t, view, "Select a note to get started")
	assert.Contains(t, view, "No notes found")
}

func TestModel_LoadOpensNewestNote(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "first", Content: "1"}, model.NewNote{Title: "second", Content: "2"})
	m = loaded(t, m, ctrl)

	title, content := m.editor.Values()
	assert.Equal(t, "second", title)
	assert.Equal(t, "2", content)
	assert.Len(t, m.list.Visible(), 2)
}

func TestModel_EnterSelectsCursorNote(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "a"}, model.NewNote{Title: "b"})
	m = loaded(t, m, ctrl)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = settle(t, m, cmd)

	sel, ok := ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.Title)
	assert.Equal(t, focusEditor, m.focus)
	title, _ := m.editor.Values()
	assert.Equal(t, "a", title)
}

func TestModel_SearchFiltersWithoutTouchingCollection(t *testing.T) {
	m, ctrl, _ := newTestModel(t,
		model.NewNote{Title: "Groceries", Content: "milk"},
		model.NewNote{Title: "Work", Content: "standup"},
	)
	m = loaded(t, m, ctrl)

	m, _ = update(t, m, runes("/"))
	require.True(t, m.list.Searching())
	m, _ = update(t, m, runes("MILK"))
	require.Len(t, m.list.Visible(), 1)
	assert.Equal(t, "Groceries", m.list.Visible()[0].Title)

	m, _ = update(t, m, runes("zzz"))
	assert.Empty(t, m.list.Visible())
	assert.Len(t, ctrl.Notes(), 2)
	assert.Contains(t, m.View(), "Try a different search")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.list.Searching())
	assert.Equal(t, "MILKzzz", m.list.Query(), "query survives leaving the search box")
}

func TestModel_QuitOnlyOutsideSearch(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m = loaded(t, m, ctrl)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("q"))
	assert.Equal(t, "q", m.list.Query())
}

func TestModel_DraftCreateFlow(t *testing.T) {
	m, ctrl, s := newTestModel(t, model.NewNote{Title: "existing"})
	m = loaded(t, m, ctrl)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = settle(t, m, cmd)
	require.Equal(t, app.Draft(), ctrl.Selection())
	require.True(t, m.editor.IsDraft())
	assert.Equal(t, focusEditor, m.focus)
	assert.Contains(t, m.View(), "Create")

	title, content := m.editor.Values()
	assert.Empty(t, title)
	assert.Empty(t, content)

	m, _ = update(t, m, runes("   "))
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, cmd = settle(t, m, cmd) // saveMsg -> store call
	m, _ = settle(t, m, cmd)   // NoteCreatedMsg

	notes, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, model.DefaultTitle, ctrl.Notes()[0].Title)
	sel, ok := ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, ctrl.Notes()[0].ID, sel.ID)
	assert.False(t, m.editor.IsDraft())
}

func TestModel_NewNoteTypingGoesToDraftTitle(t *testing.T) {
	m, ctrl, s := newTestModel(t, model.NewNote{Title: "keep me"})
	m = loaded(t, m, ctrl)
	require.Equal(t, focusList, m.focus)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = settle(t, m, cmd)
	require.Equal(t, focusEditor, m.focus)

	// "d" and "q" are list shortcuts; in a draft they are just letters.
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, runes("q"))
	assert.Equal(t, focusEditor, m.focus)

	title, _ := m.editor.Values()
	assert.Equal(t, "dq", title)
	assert.Len(t, ctrl.Notes(), 1)
	notes, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestModel_DraftHasNoDelete(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m = loaded(t, m, ctrl)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = settle(t, m, cmd)

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "ctrl+d Delete")
}

func TestModel_EditorSaveUpdatesInPlace(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "a"}, model.NewNote{Title: "b"})
	m = loaded(t, m, ctrl)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusEditor, m.focus)
	m, _ = update(t, m, runes("!"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, cmd = settle(t, m, cmd)
	assert.Equal(t, "b!", ctrl.Notes()[0].Title, "visible before the store answers")
	m, _ = settle(t, m, cmd)

	assert.Equal(t, []string{"b!", "a"}, []string{ctrl.Notes()[0].Title, ctrl.Notes()[1].Title})
	assert.Equal(t, "Saved", ctrl.Status().Text)
	assert.Contains(t, m.View(), "Saved")
}

func TestModel_EditorDeleteClearsSelection(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "only"})
	m = loaded(t, m, ctrl)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m, cmd = settle(t, m, cmd)
	m, _ = settle(t, m, cmd)

	assert.Empty(t, ctrl.Notes())
	assert.Equal(t, app.None(), ctrl.Selection())
	assert.Equal(t, focusList, m.focus)
	assert.Contains(t, m.View(), "Select a note to get started")
}

func TestModel_ListDeleteDoesNotSelect(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "a"}, model.NewNote{Title: "b"})
	m = loaded(t, m, ctrl)
	before := ctrl.Selection()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, runes("d"))
	m, cmd = settle(t, m, cmd)
	m, _ = settle(t, m, cmd)

	require.Len(t, ctrl.Notes(), 1)
	assert.Equal(t, "b", ctrl.Notes()[0].Title)
	assert.Equal(t, before, ctrl.Selection())
	assert.Equal(t, focusList, m.focus)
}

func TestModel_TypingSurvivesSaveOfSameNote(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "a"})
	m = loaded(t, m, ctrl)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runes("body"))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, cmd = settle(t, m, cmd)
	m, _ = update(t, m, runes(" more"))
	m, _ = settle(t, m, cmd)

	_, content := m.editor.Values()
	assert.Equal(t, "body more", content)
}

func TestModel_ExternalChangeReloads(t *testing.T) {
	m, ctrl, s := newTestModel(t, model.NewNote{Title: "a"})
	m = loaded(t, m, ctrl)

	_, err := s.Create(context.Background(), "from another process", "")
	require.NoError(t, err)

	m, cmd := update(t, m, externalChangeMsg{})
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				m, _ = update(t, m, c())
			}
		}
	default:
		m, _ = update(t, m, msg)
	}
	assert.Len(t, ctrl.Notes(), 2)
	assert.Len(t, m.list.Visible(), 2)
}

func TestModel_ResizeLaysOutPanes(t *testing.T) {
	m, ctrl, _ := newTestModel(t, model.NewNote{Title: "a", Content: strings.Repeat("word ", 60)})
	m = loaded(t, m, ctrl)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 40, m.listWidth())
	view := m.View()
	assert.Contains(t, view, "Notes")
	assert.Contains(t, view, "…")
}
