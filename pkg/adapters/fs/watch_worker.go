package fs

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/docket/pkg/core"
)

const debounceWindow = 50 * time.Millisecond

type watchWorker struct {
	*worker.BaseWorker
	backend   *Backend
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(b *Backend, events chan core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		backend:    b,
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
	if err := watcher.Add(w.backend.Dir()); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.backend.Dir(), err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(debounceWindow)
	w.backend.setWatcherActive(true)

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

// run is the main loop. It owns the events channel and closes it on exit.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.backend.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", panicErr)
			}
			err = panicErr
		}
	}()
	defer close(w.events)
	defer w.backend.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Every pending timer must have fired or been dropped before the channel closes.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *watchWorker) loop(ctx context.Context) error {
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
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.backend.config.Logger.Error("fsnotify error", "error", wErr)
			if w.backend.config.ErrorHandler != nil {
				w.backend.config.ErrorHandler(wErr)
			}
		}
	}
}

func (w *watchWorker) handle(ctx context.Context, event fsnotify.Event) {
	key, ok := w.backend.keyOf(event.Name)
	if !ok {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}
	w.backend.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	w.debouncer.add(key, core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()}, func(e core.Event) {
		defer func() {
			// The channel may already be closed if the worker gave up waiting.
			_ = recover()
		}()
		if e.Type != core.EventDelete && w.backend.isOwnWrite(e.Key) {
			return
		}
		w.backend.recordEvent()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}
