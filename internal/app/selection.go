package app

// SelectionKind distinguishes "nothing selected" from "editing a draft".
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectNote
	SelectDraft
)

// Selection is what the editor should show.
type Selection struct {
	Kind SelectionKind
	ID   string // set only for SelectNote
}

func None() Selection            { return Selection{Kind: SelectNone} }
func Draft() Selection           { return Selection{Kind: SelectDraft} }
func Note(id string) Selection   { return Selection{Kind: SelectNote, ID: id} }
func (s Selection) IsNote() bool { return s.Kind == SelectNote }

// Is reports whether s selects the note id.
func (s Selection) Is(id string) bool { return s.Kind == SelectNote && s.ID == id }
