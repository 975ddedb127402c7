// File: watch.go
// Title: Topology File Watcher
// Description: Re-parses a topology file whenever it or one of its
//              resolved includes changes on disk. Uses fsnotify on the
//              parent directories with a per-path debounce window and
//              notifies registered handlers with the fresh document or
//              the parse error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial topology watcher implementation

package watch

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	gterror "github.com/msto63/gmxtop/core/error"
	"github.com/msto63/gmxtop/core/log"
	"github.com/msto63/gmxtop/gmx"
	"github.com/msto63/gmxtop/gmx/topology"
	"github.com/msto63/gmxtop/utils/filex"
)

// DefaultDebounce is the window within which repeated events for the
// same path collapse into one reload.
const DefaultDebounce = 200 * time.Millisecond

// ChangeHandler receives the re-parsed document after a change, or the
// parse error when reloading failed.
type ChangeHandler func(*topology.Topology, error)

// Options configures a topology watcher
type Options struct {
	Logger   *log.Logger
	Engine   *gmx.Engine // engine used for re-parsing, default gmx.Default()
	Debounce time.Duration
}

// Watcher monitors a topology file and its resolved includes
type Watcher struct {
	mu       sync.Mutex
	path     string
	engine   *gmx.Engine
	logger   *log.Logger
	notifier *fsnotify.Watcher
	handlers []ChangeHandler
	debounce time.Duration
	files    map[string]struct{} // canonical paths belonging to the document
	dirs     map[string]struct{} // directories registered with fsnotify
	lastSeen map[string]time.Time
	stopCh   chan struct{}
	closed   bool
}

// New creates a watcher for the given topology file. The file is parsed
// once to discover its resolved includes; every file contributing nodes
// to the document is watched.
func New(path string, opts Options) (*Watcher, error) {
	if opts.Engine == nil {
		opts.Engine = gmx.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, gterror.Wrap(err, "failed to create file watcher").
			WithCode(gterror.CodeInternal).
			WithOperation("watch.New")
	}

	w := &Watcher{
		path:     path,
		engine:   opts.Engine,
		logger:   opts.Logger.WithField("component", "topology-watcher"),
		notifier: notifier,
		debounce: opts.Debounce,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		lastSeen: make(map[string]time.Time),
		stopCh:   make(chan struct{}),
	}

	// Initial parse seeds the watch list with the resolved includes.
	doc, err := w.engine.ParseFile(context.Background(), path)
	if err != nil {
		notifier.Close()
		return nil, err
	}
	if err := w.updateWatchList(doc); err != nil {
		notifier.Close()
		return nil, err
	}

	w.logger.Info("Watching topology", log.Fields{
		"path":     path,
		"files":    len(w.files),
		"debounce": w.debounce.String(),
	})

	go w.watchLoop()

	return w, nil
}

// OnChange registers a handler called after every reload.
func (w *Watcher) OnChange(handler ChangeHandler) {
	if handler == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Close stops watching and releases the fsnotify resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.stopCh)
	w.mu.Unlock()

	return w.notifier.Close()
}

// updateWatchList rebuilds the watched file set from the node positions
// of a freshly parsed document. fsnotify watches the parent directories
// so editors that replace files by rename are still seen.
func (w *Watcher) updateWatchList(doc *topology.Topology) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.files = make(map[string]struct{})
	w.files[canonical(w.path)] = struct{}{}
	for n := range doc.Nodes() {
		source := n.Value().Position().Source
		if source == "" || !filex.IsFile(source) {
			continue
		}
		w.files[canonical(source)] = struct{}{}
	}

	for file := range w.files {
		dir := filex.Dir(file)
		if _, watched := w.dirs[dir]; watched {
			continue
		}
		if err := w.notifier.Add(dir); err != nil {
			return gterror.Wrap(err, "failed to watch directory").
				WithCode(gterror.CodeIOError).
				WithOperation("watch.updateWatchList").
				WithDetail("directory", dir)
		}
		w.dirs[dir] = struct{}{}
	}
	return nil
}

// watchLoop dispatches fsnotify events until the watcher is closed.
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.notifier.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.handleEvent(event)

		case err, ok := <-w.notifier.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", log.Fields{"error": err.Error()})
		}
	}
}

// handleEvent reloads the document when the event concerns a watched
// file and the debounce window has passed.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	name := canonical(event.Name)

	w.mu.Lock()
	if _, relevant := w.files[name]; !relevant {
		w.mu.Unlock()
		return
	}
	if last, seen := w.lastSeen[name]; seen && time.Since(last) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.lastSeen[name] = time.Now()
	w.mu.Unlock()

	w.logger.Debug("Topology changed, reloading", log.Fields{
		"file": name,
		"op":   event.Op.String(),
	})

	doc, err := w.engine.ParseFile(context.Background(), w.path)
	if err == nil {
		if werr := w.updateWatchList(doc); werr != nil {
			w.logger.Warn("Failed to refresh watch list", log.Fields{
				"error": werr.Error(),
			})
		}
	}
	w.notify(doc, err)
}

// notify calls the registered handlers outside the lock.
func (w *Watcher) notify(doc *topology.Topology, err error) {
	w.mu.Lock()
	handlers := make([]ChangeHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		handler(doc, err)
	}
}

// canonical maps a path to the form used for watch set membership.
func canonical(path string) string {
	if c, err := filex.Canonical(path); err == nil {
		return c
	}
	return filex.Clean(path)
}
