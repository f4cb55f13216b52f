// Package local implements the notes store on top of a single JSON array
// kept under one key of a kv.KV. Every mutation rewrites the whole array.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/store"
	"github.com/idilsaglam/notes/internal/store/kv"
)

// Key is the single entry holding every note.
const Key = "notes_app_items_v1"

var _ store.Store = (*Store)(nil)

// Store is local-mode persistence. It does not lock: overlapping writes
// from two processes (or two goroutines) can overwrite each other.
type Store struct {
	kv  kv.KV
	log logrus.FieldLogger

	now   func() time.Time
	newID func(now time.Time) string
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces identifier generation.
func WithIDs(gen func(now time.Time) string) Option {
	return func(s *Store) { s.newID = gen }
}

func New(backend kv.KV, log logrus.FieldLogger, opts ...Option) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Store{kv: backend, log: log, now: time.Now, newID: newID}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newID prefers a random UUID and falls back to the creation timestamp.
func newID(now time.Time) string {
	id, err := uuid.NewRandom()
	if err != nil {
		return strconv.FormatInt(model.Millis(now), 10)
	}
	return id.String()
}

// load never fails on bad data: a missing or undecodable entry is an empty list.
func (s *Store) load(ctx context.Context) ([]model.Note, error) {
	b, err := s.kv.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Key, err)
	}
	if len(b) == 0 {
		return []model.Note{}, nil
	}
	var items []model.Note
	if err := json.Unmarshal(b, &items); err != nil {
		s.log.WithError(err).WithField("key", Key).Warn("stored notes are not valid JSON, treating as empty")
		return []model.Note{}, nil
	}
	if items == nil {
		items = []model.Note{}
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, items []model.Note) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.kv.Put(ctx, Key, b); err != nil {
		return fmt.Errorf("write %s: %w", Key, err)
	}
	return nil
}

// List returns every note, newest first.
func (s *Store) List(ctx context.Context) ([]model.Note, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt > items[j].UpdatedAt
	})
	return items, nil
}

func (s *Store) Create(ctx context.Context, title, content string) (*model.Note, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	note := model.Note{
		ID:        s.newID(now),
		Title:     model.NormalizeTitle(title),
		Content:   content,
		UpdatedAt: model.Millis(now),
	}
	items = append(items, note)
	if err := s.save(ctx, items); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"op": "create", "id": note.ID}).Debug("note stored")
	return &note, nil
}

func (s *Store) Update(ctx context.Context, id, title, content string) (*model.Note, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &store.NotFoundError{ID: id}
	}
	items[idx].Title = model.NormalizeTitle(title)
	items[idx].Content = content
	items[idx].UpdatedAt = model.Millis(s.now())
	if err := s.save(ctx, items); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"op": "update", "id": id}).Debug("note stored")
	updated := items[idx]
	return &updated, nil
}

// Delete drops every entry with id and succeeds even when there was none.
func (s *Store) Delete(ctx context.Context, id string) error {
	items, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, n := range items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if err := s.save(ctx, kept); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"op": "delete", "id": id, "removed": len(items) - len(kept)}).Debug("note deleted")
	return nil
}
