package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// File stores each key as <dir>/<key>.json. Human-readable, portable.
// Writes go to a temp file and are renamed into place.
// No cross-process locking: two writers race and the last rename wins.
type File struct {
	dir string

	mu      sync.Mutex
	written map[string]uint64 // xxhash of the last bytes written or observed per key
	own     []uint64          // xxhash of the most recent values this process wrote
}

const ownHistory = 8

// NewFile prepares dir (mode 0700) and returns a store rooted there.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &File{dir: dir, written: make(map[string]uint64)}, nil
}

// Path is the file holding key.
func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (f *File) Put(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}

	sum := xxhash.Sum64(value)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Rename(tmp.Name(), f.Path(key)); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	f.written[key] = sum
	if len(f.own) == ownHistory {
		f.own = f.own[1:]
	}
	f.own = append(f.own, sum)
	return nil
}

func (f *File) Close() error { return nil }

// Watch reports changes to key made by someone other than this File.
// The channel is buffered by one and coalesces bursts; it is closed
// when ctx is done or the watcher fails.
func (f *File) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	if err := w.Add(f.dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", f.dir, err)
	}

	out := make(chan struct{}, 1)
	target := filepath.Clean(f.Path(key))
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if !f.foreign(key) {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out, nil
}

// foreign reads key and reports whether its bytes are neither something
// this process wrote nor the content last observed. Observed content becomes
// the new baseline so one external write yields one notification.
func (f *File) foreign(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.Path(key))
	if err != nil {
		return false
	}
	sum := xxhash.Sum64(b)
	if slices.Contains(f.own, sum) {
		return false
	}
	if last, ok := f.written[key]; ok && last == sum {
		return false
	}
	f.written[key] = sum
	return true
}
