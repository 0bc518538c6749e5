// Package watch provides corpus file watching for store rebuilds.
//
// The store is immutable, so a changed corpus is handled by loading a fresh
// store and swapping the reference; the watcher's job is only to say when.
// Events are debounced because editors produce bursts of writes for a single
// save.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

const eventChannelBuffer = 64

// Operation indicates the type of file operation.
type Operation string

// OpCreate, OpModify, and OpDelete enumerate the watch operation types.
const (
	OpCreate Operation = "create"
	OpModify Operation = "modify"
	OpDelete Operation = "delete"
)

// Event represents a corpus file change after debouncing.
type Event struct {
	// EventID uniquely identifies this event for log correlation.
	EventID string

	// Path is the absolute path of the changed file.
	Path string

	// Operation is the type of change.
	Operation Operation
}

// Config configures corpus file watching.
type Config struct {
	// DebounceDelay is how long to wait for more changes before emitting.
	DebounceDelay time.Duration

	// Extensions lists file extensions to report (e.g. [".md", ".html"]).
	Extensions []string
}

// DefaultConfig returns default watch configuration.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 500 * time.Millisecond,
		Extensions:    []string{".md", ".markdown", ".txt", ".html", ".htm"},
	}
}

// Watcher watches corpus source files and emits debounced change events.
type Watcher struct {
	config     Config
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
	extensions map[string]bool
	files      map[string]bool // watched files; empty means any matching file

	pendingMu sync.Mutex
	pending   map[string]Operation

	events chan Event
}

// New creates a watcher for the given corpus files. The directories
// containing the files are watched (fsnotify tracks directories more
// reliably than files across editor save strategies); events are filtered
// back down to the given files.
func New(cfg Config, files []string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultConfig().DebounceDelay
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}

	extensions := make(map[string]bool)
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[strings.ToLower(ext)] = true
	}

	fileSet := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		fileSet[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	w := &Watcher{
		config:     cfg,
		watcher:    fsw,
		logger:     logger,
		extensions: extensions,
		files:      fileSet,
		pending:    make(map[string]Operation),
		events:     make(chan Event, eventChannelBuffer),
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			w.logger.Warn("Failed to watch directory",
				slog.String("path", dir),
				slog.String("error", err.Error()))
		} else {
			w.logger.Debug("Watching directory", slog.String("path", dir))
		}
	}

	return w, nil
}

// Events returns the channel of debounced watch events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins processing file system events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.processEvents(ctx)

	w.logger.Info("Corpus watcher started",
		slog.Duration("debounce", w.config.DebounceDelay),
		slog.Int("files", len(w.files)))
}

// Stop stops the watcher. The events channel is closed by the processing
// goroutine when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent records a raw event as pending if it concerns a corpus file.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if !w.relevant(event.Name) {
		return
	}

	var op Operation
	switch {
	case event.Op.Has(fsnotify.Create):
		op = OpCreate
	case event.Op.Has(fsnotify.Write):
		op = OpModify
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		op = OpDelete
	default:
		return
	}

	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	// A delete after pending writes wins; a write after a pending create
	// keeps the create
	if existing, ok := w.pending[event.Name]; ok {
		if op == OpDelete {
			w.pending[event.Name] = op
		} else if existing == OpCreate {
			// keep create
		} else {
			w.pending[event.Name] = op
		}
		return
	}
	w.pending[event.Name] = op
}

// flushPending emits one event per pending file.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = make(map[string]Operation)
	w.pendingMu.Unlock()

	for path, op := range pending {
		event := Event{
			EventID:   uuid.New().String(),
			Path:      path,
			Operation: op,
		}

		select {
		case w.events <- event:
			w.logger.Debug("Corpus file changed",
				slog.String("event_id", event.EventID),
				slog.String("path", path),
				slog.String("operation", string(op)))
		default:
			w.logger.Warn("Dropping watch event, channel full",
				slog.String("path", path))
		}
	}
}

// relevant reports whether a path is one of the watched corpus files, or has
// a corpus extension when no explicit file list was given.
func (w *Watcher) relevant(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if len(w.files) > 0 {
		return w.files[abs]
	}
	return w.extensions[strings.ToLower(filepath.Ext(abs))]
}
