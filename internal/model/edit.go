package model

// Edit is what the editor hands back on save: either a note that does
// not exist yet or a change to one that does.
type Edit interface {
	Fields() (title, content string)
	isEdit()
}

// NewNote asks the store to create a note.
type NewNote struct {
	Title   string
	Content string
}

// ExistingNote asks the store to overwrite title and content of note ID.
type ExistingNote struct {
	ID      string
	Title   string
	Content string
}

func (e NewNote) Fields() (string, string)      { return e.Title, e.Content }
func (e ExistingNote) Fields() (string, string) { return e.Title, e.Content }

func (NewNote) isEdit()      {}
func (ExistingNote) isEdit() {}

// Apply returns n with the edit's title and content.
func (e ExistingNote) Apply(n Note) Note {
	n.Title = e.Title
	n.Content = e.Content
	return n
}
