package core

import "sync"

// Disposers collects cleanup functions that run once, last-in first-out.
// The zero value is ready to use.
type Disposers struct {
	mu       sync.Mutex
	cleanups []func()
	disposed bool
}

// Add registers cleanup and returns a function that unregisters it.
// If Dispose already ran, cleanup runs immediately.
func (d *Disposers) Add(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		cleanup()
		return func() {}
	}
	index := len(d.cleanups)
	d.cleanups = append(d.cleanups, cleanup)
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if index < len(d.cleanups) {
			d.cleanups[index] = nil
		}
	}
}

// Dispose runs every registered cleanup in reverse order. Later calls are no-ops.
func (d *Disposers) Dispose() {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.disposed = true
	cleanups := d.cleanups
	d.cleanups = nil
	d.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		if cleanups[i] != nil {
			cleanups[i]()
		}
	}
}

// IsDisposed reports whether Dispose has run.
func (d *Disposers) IsDisposed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disposed
}

// Reset re-arms a disposed collection so it can be reused after a remount.
func (d *Disposers) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disposed = false
	d.cleanups = nil
}
