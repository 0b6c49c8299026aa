package debounce

import (
	"sync"
	"time"
)

// Debouncer is a single-slot delayed task. Each Schedule call cancels any
// pending task and restarts the delay, so only the last task within a burst
// actually runs.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule replaces any pending task with fn and restarts the delay.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		task := d.pending
		d.pending = nil
		d.mu.Unlock()
		if task != nil {
			task()
		}
	})
}

// Flush runs the pending task immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	task := d.pending
	d.pending = nil
	d.mu.Unlock()

	if task != nil {
		task()
	}
}

// Stop drops the pending task without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = nil
}
