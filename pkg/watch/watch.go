// Package watch is an optional, library-level ingestion convenience: it feeds files
// changed on disk into the streaming content-defined chunker (pkg/chunk.Reader) as
// they are written. It is not a daemon and adds no persistence of its own — an
// embedder wires its Changes channel into whatever storage they choose.
package watch

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/saworbit/kado/internal/kadocfg"
	"github.com/saworbit/kado/pkg/chunk"
)

// Change carries the result of chunking one changed file.
type Change struct {
	Path    string
	Triples []chunk.Triple
	Err     error
}

// Watcher wraps an fsnotify.Watcher, re-chunking a file with cfg every time fsnotify
// reports it written or created.
type Watcher struct {
	fs      *fsnotify.Watcher
	cfg     *kadocfg.Config
	Changes chan Change
	done    chan struct{}
}

// New creates a Watcher. Paths to watch are added with Add before calling Run.
func New(cfg *kadocfg.Config) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	return &Watcher{fs: fs, cfg: cfg, Changes: make(chan Change), done: make(chan struct{})}, nil
}

// Add registers a path (file or directory) for notification.
func (w *Watcher) Add(path string) error {
	if err := w.fs.Add(path); err != nil {
		return fmt.Errorf("watch: add %q: %w", path, err)
	}
	return nil
}

// Run blocks, dispatching a Change on w.Changes for every write/create event, until
// Close is called or the underlying fsnotify channel closes.
func (w *Watcher) Run() error {
	for {
		select {
		case <-w.done:
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.Changes <- w.chunkFile(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.Changes <- Change{Err: fmt.Errorf("watch: fsnotify error: %w", err)}
		}
	}
}

func (w *Watcher) chunkFile(path string) Change {
	r, err := chunk.ReadFile(path, w.cfg)
	if err != nil {
		return Change{Path: path, Err: fmt.Errorf("watch: %w", err)}
	}
	defer r.Close()

	var triples []chunk.Triple
	for {
		t, err := r.Next()
		if err != nil {
			break
		}
		triples = append(triples, t)
	}
	return Change{Path: path, Triples: triples}
}

// Close stops Run and releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
