package fs

import (
	"sync"
	"time"

	"github.com/aretw0/docket/pkg/core"
)

// debouncer coalesces bursts of events per key: only the last event of a
// burst is delivered, once the key has been quiet for the window.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	wg      sync.WaitGroup
	timers  map[string]*time.Timer
	pending map[string]core.Event
	stopped bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]core.Event),
	}
}

func (d *debouncer) add(key string, e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending[key] = e

	if t, ok := d.timers[key]; ok {
		if t.Stop() {
			// The stopped timer will never run; release its slot.
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		ev, ok := d.pending[key]
		delete(d.pending, key)
		delete(d.timers, key)
		d.mu.Unlock()

		if ok {
			fire(ev)
		}
	})
}

// stopAndWait drops new events and waits up to timeout for in-flight timers.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
