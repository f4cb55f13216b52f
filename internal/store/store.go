// Package store defines the persistence port used by the notes UI and
// resolves which implementation backs it for the lifetime of the process.
package store

import (
	"context"

	"github.com/idilsaglam/notes/internal/model"
)

// Store is the persistence contract shared by local and remote mode.
//
// Create and Update may return a nil note when the remote side answers
// 204 No Content. Delete succeeds for identifiers that do not exist.
// Implementations do not serialize concurrent calls.
type Store interface {
	List(ctx context.Context) ([]model.Note, error)
	Create(ctx context.Context, title, content string) (*model.Note, error)
	Update(ctx context.Context, id, title, content string) (*model.Note, error)
	Delete(ctx context.Context, id string) error
}

// Mode names the persistence mode chosen at startup.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)
