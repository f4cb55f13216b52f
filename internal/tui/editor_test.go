package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notes/internal/model"
)

func focusedEditor() EditorView {
	e := newEditorView(defaultKeys())
	e.SetSize(60, 20)
	return e
}

func TestEditor_ResetsOnlyWhenIdentityChanges(t *testing.T) {
	e := focusedEditor()
	e.Show(editorNote, model.Note{ID: "1", Title: "one", Content: "body"})
	e.Focus()
	e, _ = e.Update(runes("!"))

	e.Show(editorNote, model.Note{ID: "1", Title: "one (server)", Content: "body"})
	title, _ := e.Values()
	assert.Equal(t, "one!", title)

	e.Show(editorNote, model.Note{ID: "2", Title: "two", Content: "other"})
	title, content := e.Values()
	assert.Equal(t, "two", title)
	assert.Equal(t, "other", content)

	e.Show(editorDraft, model.Note{})
	title, content = e.Values()
	assert.Empty(t, title)
	assert.Empty(t, content)
}

func TestEditor_SaveNormalizesTitle(t *testing.T) {
	e := focusedEditor()
	e.Show(editorNote, model.Note{ID: "7", Title: "  padded  ", Content: "c"})
	e.Focus()

	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, saveMsg{edit: model.ExistingNote{ID: "7", Title: "padded", Content: "c"}}, cmd())
}

func TestEditor_DraftSavesAsNewNote(t *testing.T) {
	e := focusedEditor()
	e.Show(editorDraft, model.Note{})
	e.Focus()

	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, saveMsg{edit: model.NewNote{Title: model.DefaultTitle, Content: ""}}, cmd())
	assert.Contains(t, e.View(), "Create")
	assert.NotContains(t, e.View(), "Delete")
}

func TestEditor_DeleteOnlyForExistingNotes(t *testing.T) {
	e := focusedEditor()
	e.Show(editorNote, model.Note{ID: "9", Title: "t"})
	e.Focus()

	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, deleteMsg{id: "9"}, cmd())
	assert.Contains(t, e.View(), "Save")
}

func TestEditor_PlaceholdersIgnoreInput(t *testing.T) {
	e := focusedEditor()
	assert.Contains(t, e.View(), "Loading…")

	e.Show(editorEmpty, model.Note{})
	assert.False(t, e.Editable())
	assert.Contains(t, e.View(), "Select a note to get started")
	assert.Contains(t, e.View(), "Or create a new one")

	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
}
