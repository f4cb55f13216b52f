// Package app holds the notes collection and the selection, and turns
// view intents into store calls. State only changes inside Handle and the
// intent methods, which the Bubble Tea update loop calls one at a time.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/store"
)

// Phase is loading until the first list call settles, then ready for good.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

// Status is the one-line feedback shown under the views.
type Status struct {
	Text string
	Err  bool
}

type Controller struct {
	ctx   context.Context
	store store.Store
	log   logrus.FieldLogger
	now   func() time.Time

	phase  Phase
	notes  []model.Note
	sel    Selection
	status Status

	seq   uint64
	saves map[string]*pendingSave
}

// pendingSave tracks the unsettled optimistic updates of one note.
type pendingSave struct {
	seq  uint64     // the latest update issued for the note
	base model.Note // the note as last known to be stored
}

func New(ctx context.Context, s store.Store, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{ctx: ctx, store: s, log: log, now: time.Now, notes: []model.Note{}, saves: map[string]*pendingSave{}}
}

func (c *Controller) Phase() Phase         { return c.phase }
func (c *Controller) Selection() Selection { return c.sel }
func (c *Controller) Status() Status       { return c.status }
func (c *Controller) ClearStatus()         { c.status = Status{} }

// Notes is the cached collection. Callers must not modify it.
func (c *Controller) Notes() []model.Note { return c.notes }

// Selected returns the selected note when the selection points at one
// that is in the collection.
func (c *Controller) Selected() (model.Note, bool) {
	if !c.sel.IsNote() {
		return model.Note{}, false
	}
	if i := c.indexOf(c.sel.ID); i >= 0 {
		return c.notes[i], true
	}
	return model.Note{}, false
}

func (c *Controller) indexOf(id string) int {
	for i := range c.notes {
		if c.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) fail(what string, err error) {
	c.log.WithError(err).Error(what)
	c.status = Status{Text: fmt.Sprintf("%s: %v", what, err), Err: true}
}

func (c *Controller) info(text string) {
	c.status = Status{Text: text}
}

// Notice reports the outcome of something the views did on their own.
func (c *Controller) Notice(text string, err error) {
	if err != nil {
		c.fail(text, err)
		return
	}
	c.info(text)
}

// Load fetches the collection for the initial transition to ready.
func (c *Controller) Load() tea.Cmd {
	return c.list(false)
}

// Reload refreshes the collection, keeping the selection when possible.
func (c *Controller) Reload() tea.Cmd {
	return c.list(true)
}

func (c *Controller) list(reload bool) tea.Cmd {
	ctx, s := c.ctx, c.store
	return func() tea.Msg {
		notes, err := s.List(ctx)
		return NotesLoadedMsg{Notes: notes, Err: err, Reload: reload}
	}
}

// Select points the selection at id. The id does not have to exist.
func (c *Controller) Select(id string) {
	c.sel = Note(id)
}

// StartDraft opens a blank editor without touching the collection.
func (c *Controller) StartDraft() {
	c.sel = Draft()
}

// Save creates or updates depending on the edit variant.
// Updates are applied to the collection right away and reverted on failure.
func (c *Controller) Save(e model.Edit) tea.Cmd {
	ctx, s := c.ctx, c.store
	switch e := e.(type) {
	case model.NewNote:
		return func() tea.Msg {
			n, err := s.Create(ctx, e.Title, e.Content)
			return NoteCreatedMsg{Note: n, Err: err}
		}
	case model.ExistingNote:
		c.seq++
		seq := c.seq
		if i := c.indexOf(e.ID); i >= 0 {
			p, ok := c.saves[e.ID]
			if !ok {
				p = &pendingSave{base: c.notes[i]}
				c.saves[e.ID] = p
			}
			p.seq = seq
			c.notes[i] = e.Apply(c.notes[i])
		}
		return func() tea.Msg {
			n, err := s.Update(ctx, e.ID, e.Title, e.Content)
			return NoteUpdatedMsg{Edit: e, Note: n, Err: err, seq: seq}
		}
	default:
		c.fail("Could not save note", fmt.Errorf("unsupported edit %T", e))
		return nil
	}
}

// Delete removes id from the collection right away and restores it if
// the store call fails.
func (c *Controller) Delete(id string) tea.Cmd {
	u := undo{index: c.indexOf(id), selected: c.sel.Is(id)}
	if u.index >= 0 {
		u.prev = c.notes[u.index]
		c.notes = append(c.notes[:u.index:u.index], c.notes[u.index+1:]...)
	}
	if u.selected {
		c.sel = None()
	}
	delete(c.saves, id)
	ctx, s := c.ctx, c.store
	return func() tea.Msg {
		return NoteDeletedMsg{ID: id, Err: s.Delete(ctx, id), undo: u}
	}
}

// Handle applies store results. It reports false for messages it does not own.
func (c *Controller) Handle(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case NotesLoadedMsg:
		c.loaded(msg)
		return nil, true
	case NoteCreatedMsg:
		return c.created(msg), true
	case NoteUpdatedMsg:
		c.updated(msg)
		return nil, true
	case NoteDeletedMsg:
		c.deleted(msg)
		return nil, true
	}
	return nil, false
}

func (c *Controller) loaded(msg NotesLoadedMsg) {
	first := c.phase == PhaseLoading
	c.phase = PhaseReady

	if msg.Err != nil {
		// Non-fatal: the UI stays usable with whatever it had (nothing on first load).
		c.fail("Could not load notes", msg.Err)
		if first {
			c.notes = []model.Note{}
			c.sel = None()
		}
		return
	}

	c.notes = msg.Notes
	if c.notes == nil {
		c.notes = []model.Note{}
	}
	c.log.WithFields(logrus.Fields{"count": len(c.notes), "reload": msg.Reload}).Debug("notes loaded")
	for id, p := range c.saves {
		if i := c.indexOf(id); i >= 0 {
			p.base = c.notes[i]
		}
	}

	if first || !msg.Reload {
		c.sel = None()
		if len(c.notes) > 0 {
			c.sel = Note(c.notes[0].ID)
		}
		return
	}
	if c.sel.IsNote() && c.indexOf(c.sel.ID) < 0 {
		c.sel = None()
	}
}

func (c *Controller) created(msg NoteCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		c.fail("Could not create note", msg.Err)
		return nil
	}
	if msg.Note == nil {
		// The service accepted the note but did not say what it stored.
		c.fail("Could not create note", errors.New("service returned no note"))
		return c.Reload()
	}
	c.notes = append([]model.Note{*msg.Note}, c.notes...)
	c.sel = Note(msg.Note.ID)
	c.info("Created")
	return nil
}

// updated settles one update. Only the latest update of a note rolls back;
// while a newer one is pending, a settled result just moves the base.
func (c *Controller) updated(msg NoteUpdatedMsg) {
	id := msg.Edit.ID
	i := c.indexOf(id)
	p, tracked := c.saves[id]
	latest := tracked && p.seq == msg.seq
	if latest {
		delete(c.saves, id)
	}

	if msg.Err != nil {
		if latest && i >= 0 {
			c.notes[i] = p.base
		}
		c.fail("Could not save note", msg.Err)
		return
	}
	if i < 0 {
		// Deleted while the update was in flight.
		return
	}

	var n model.Note
	if msg.Note != nil {
		n = *msg.Note
	} else {
		n = msg.Edit.Apply(c.notes[i])
		n.UpdatedAt = model.Millis(c.now())
	}
	if tracked && !latest {
		p.base = n
	} else {
		c.notes[i] = n
	}
	c.info("Saved")
}

func (c *Controller) deleted(msg NoteDeletedMsg) {
	if msg.Err == nil {
		c.info("Deleted")
		return
	}
	u := msg.undo
	if u.index >= 0 && c.indexOf(msg.ID) < 0 {
		at := min(u.index, len(c.notes))
		c.notes = append(c.notes[:at:at], append([]model.Note{u.prev}, c.notes[at:]...)...)
		if u.selected && c.sel.Kind == SelectNone {
			c.sel = Note(msg.ID)
		}
	}
	c.fail("Could not delete note", msg.Err)
}
