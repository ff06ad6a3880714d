package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/quire/pkg/core"
)

const defaultDebounce = 50 * time.Millisecond

// Watch emits an Event whenever the state document changes on disk, e.g. when
// another process saves. This is a notification only: consumers Reload and
// recompute their derived views, they never merge. The channel is closed when
// ctx is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)
	w := newWatchWorker(s, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(store *Store, events chan core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("state-watcher"),
		store:      store,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(w.store.Path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch vault directory: %w", err)
	}

	interval := w.store.config.Debounce
	if interval <= 0 {
		interval = defaultDebounce
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(interval)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// processFilesystemEvent filters, maps, and debounces a filesystem event.
// Returns true if the event was accepted.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) (processed bool) {
	if w.store.config.Logger != nil {
		w.store.config.Logger.Debug("event received", "name", event.Name)
	}

	// Atomic saves go through a quire-tmp-* file plus a rename; only the
	// final name matters here.
	if filepath.Base(event.Name) != StateFileName {
		return false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		eType = core.EventSaved
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		eType = core.EventReset
	default:
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      eType,
		Timestamp: time.Now().Unix(),
	})

	return true
}

// sendEvent enqueues an event via the debouncer, protecting against channel
// closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(string(event.Type), func() {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.events <- event:
		case <-ctx.Done():
		}
	})
}

// handleWatcherError processes errors from the fsnotify watcher.
func (w *watchWorker) handleWatcherError(err error) (shouldContinue bool) {
	if w.store.config.Logger != nil {
		w.store.config.Logger.Error("fsnotify error", "error", err)
	}
	if w.store.config.ErrorHandler != nil {
		w.store.config.ErrorHandler(err)
	}
	return true
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			// Stack trace only when debug logging is enabled.
			var stack string
			if w.store.config.Logger != nil && w.store.config.Logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if w.store.config.Logger != nil {
				if stack != "" {
					w.store.config.Logger.Error("watcher panic", "error", panicErr, "stack", stack)
				} else {
					w.store.config.Logger.Error("watcher panic", "error", panicErr)
				}
			}
		}
	}()
	defer close(w.events)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Shutdown debouncer: stop accepting new events and wait for in-flight
	// timers to complete before the deferred close of the events channel.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

// mainEventLoop is the core select loop that processes filesystem and watcher
// events.
func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}
