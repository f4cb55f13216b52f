// Package backend picks the store implementation once per process.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/notes/internal/config"
	"github.com/idilsaglam/notes/internal/store"
	"github.com/idilsaglam/notes/internal/store/kv"
	"github.com/idilsaglam/notes/internal/store/local"
	"github.com/idilsaglam/notes/internal/store/remote"
)

// Backend is the resolved persistence for this process.
type Backend struct {
	store.Store
	Mode store.Mode
	// Describe is a short human label such as "local (file: ~/.notes)".
	Describe string

	kv kv.KV
}

// Open resolves the mode from cfg. It never switches mode afterwards.
func Open(cfg *config.Config, log logrus.FieldLogger) (*Backend, error) {
	if cfg.Mode() == store.ModeRemote {
		c := remote.New(cfg.API.BaseURL,
			remote.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
			remote.WithLogger(log),
		)
		log.WithField("base_url", c.BaseURL()).Info("using remote notes service")
		return &Backend{Store: c, Mode: store.ModeRemote, Describe: "remote (" + c.BaseURL() + ")"}, nil
	}

	var (
		backend kv.KV
		where   string
		err     error
	)
	switch cfg.Storage.Backend {
	case "memory":
		backend, where = kv.NewMemory(), "memory"
	case "sqlite":
		where = filepath.Join(cfg.Storage.Dir, "notes.db")
		if err = os.MkdirAll(cfg.Storage.Dir, 0o700); err == nil {
			backend, err = kv.OpenSQLite(where)
		}
	default:
		where = cfg.Storage.Dir
		backend, err = kv.NewFile(cfg.Storage.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}

	log.WithFields(logrus.Fields{"backend": cfg.Storage.Backend, "location": where}).Info("using local notes storage")
	return &Backend{
		Store:    local.New(backend, log),
		Mode:     store.ModeLocal,
		Describe: fmt.Sprintf("local (%s: %s)", cfg.Storage.Backend, where),
		kv:       backend,
	}, nil
}

// Watch reports notes written by another process. It returns nil when the
// backend cannot observe such writes (remote, sqlite, memory).
func (b *Backend) Watch(ctx context.Context) (<-chan struct{}, error) {
	f, ok := b.kv.(*kv.File)
	if !ok {
		return nil, nil
	}
	return f.Watch(ctx, local.Key)
}

func (b *Backend) Close() error {
	if b.kv != nil {
		return b.kv.Close()
	}
	return nil
}
