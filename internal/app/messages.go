package app

import "github.com/idilsaglam/notes/internal/model"

// NotesLoadedMsg carries the result of a list call.
// Reload is set for refreshes after the initial load.
type NotesLoadedMsg struct {
	Notes  []model.Note
	Err    error
	Reload bool
}

// NoteCreatedMsg carries the result of a create call. Note is nil when
// the service answered without a body.
type NoteCreatedMsg struct {
	Note *model.Note
	Err  error
}

// NoteUpdatedMsg carries the result of an update call.
type NoteUpdatedMsg struct {
	Edit model.ExistingNote
	Note *model.Note
	Err  error

	seq uint64
}

// NoteDeletedMsg carries the result of a delete call.
type NoteDeletedMsg struct {
	ID  string
	Err error

	undo undo
}

// undo is what an optimistic delete needs to be reverted.
type undo struct {
	prev     model.Note
	index    int // -1 when the note was not in the collection
	selected bool
}
