package core

import (
	"reflect"
	"slices"
	"sync"
)

// Observable holds a value and notifies listeners when it changes.
// It satisfies Binding and is safe for concurrent use.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	equal     func(a, b T) bool
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an Observable. Values of comparable dynamic type are
// compared with ==; anything else (slices, maps) notifies on every Set.
func NewObservable[T any](initial T) *Observable[T] {
	return NewObservableWithEquality(initial, defaultEqual[T])
}

// NewObservableWithEquality creates an Observable that skips notifications
// when equal reports the old and new values as the same.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores value and notifies listeners unless it equals the current one.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := o.snapshotLocked()
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(value)
	}
}

// Update applies transform to the current value and stores the result.
func (o *Observable[T]) Update(transform func(T) T) {
	o.Set(transform(o.Value()))
}

// AddListener registers a callback and returns an unsubscribe function.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	if listener == nil {
		return func() {}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = listener
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

func (o *Observable[T]) snapshotLocked() []func(T) {
	ids := make([]int, 0, len(o.listeners))
	for id := range o.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]func(T), 0, len(ids))
	for _, id := range ids {
		out = append(out, o.listeners[id])
	}
	return out
}

// defaultEqual compares with ==. A comparable type can still hold an
// uncomparable value behind an interface field, so a panicking comparison
// reports the values as different.
func defaultEqual[T any](a, b T) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == vb
	}
	if !reflect.TypeOf(va).Comparable() || !reflect.TypeOf(vb).Comparable() {
		return false
	}
	return va == vb
}
