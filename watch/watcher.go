// Package watch re-runs a callback when any of a set of input files
// changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/logger"
)

// DefaultDebounce collapses bursts of events (editors often write twice).
const DefaultDebounce = 500 * time.Millisecond

// ChangeCallback is invoked after a debounced change with the files that
// changed since the previous call.
type ChangeCallback func(ctx context.Context, changed []string) error

// Watcher watches input files for changes and triggers a callback
type Watcher struct {
	watcher        *fsnotify.Watcher
	files          map[string]bool
	callback       ChangeCallback
	debouncePeriod time.Duration
	log            *zap.SugaredLogger

	// runMu serializes callbacks; a change during a slow run waits for it
	runMu sync.Mutex

	mu            sync.Mutex
	pending       map[string]bool
	debounceTimer *time.Timer
	runs          int
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debouncePeriod = d }
}

// WithLogger sets the logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(w *Watcher) { w.log = log }
}

// New watches the directories containing files. Directories are watched
// rather than the files so atomic renames by editors are still seen.
func New(files []string, callback ChangeCallback, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:        fw,
		files:          make(map[string]bool, len(files)),
		callback:       callback,
		debouncePeriod: DefaultDebounce,
		log:            logger.Named("watch"),
		pending:        make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// Run blocks until ctx is cancelled or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugw("input changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.schedule(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

// relevant keeps writes, creates and renames of watched files.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// schedule debounces rapid changes and triggers the callback
func (w *Watcher) schedule(ctx context.Context, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[name] = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		w.fire(ctx)
	})
}

func (w *Watcher) addPending(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[name] = true
}

func (w *Watcher) fire(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for name := range w.pending {
		changed = append(changed, name)
	}
	w.pending = make(map[string]bool)
	if len(changed) > 0 {
		w.runs++
	}
	w.mu.Unlock()

	if len(changed) == 0 || ctx.Err() != nil {
		return
	}
	if err := w.callback(ctx, changed); err != nil {
		// keep watching; the next change may fix the input
		w.log.Errorw("regeneration failed", logger.FieldError, err)
	}
}

// Runs returns how many times the callback has been triggered.
func (w *Watcher) Runs() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
