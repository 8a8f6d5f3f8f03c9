package feed

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// DefaultPageSize is used when a fetch asks for a non-positive limit.
const DefaultPageSize = 20

// ErrBadCursor is returned for cursors a source did not issue.
var ErrBadCursor = stderrors.New("feed: invalid cursor")

// Page is one fetch result.
type Page[T any] struct {
	Items []T
	// Next is the cursor for the following page.
	Next string
	// Done is true when no items follow this page.
	Done bool
}

// Source fetches pages. An empty cursor asks for the first page.
type Source[T any] interface {
	Fetch(ctx context.Context, cursor string, limit int) (Page[T], error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context, cursor string, limit int) (Page[T], error)

// Fetch calls f.
func (f SourceFunc[T]) Fetch(ctx context.Context, cursor string, limit int) (Page[T], error) {
	return f(ctx, cursor, limit)
}

// MemorySource serves pages from a slice. Cursors are offsets.
type MemorySource[T any] struct {
	// Latency delays every fetch, honouring cancellation.
	Latency time.Duration

	mu    sync.RWMutex
	items []T
}

// NewMemorySource creates a source over a copy of items.
func NewMemorySource[T any](items []T) *MemorySource[T] {
	return &MemorySource[T]{items: append([]T(nil), items...)}
}

// Fetch returns up to limit items after cursor.
func (m *MemorySource[T]) Fetch(ctx context.Context, cursor string, limit int) (Page[T], error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	offset := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 {
			return Page[T]{}, fmt.Errorf("%w: %q", ErrBadCursor, cursor)
		}
		offset = n
	}
	if err := wait(ctx, m.Latency); err != nil {
		return Page[T]{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset > len(m.items) {
		offset = len(m.items)
	}
	end := min(offset+limit, len(m.items))
	return Page[T]{
		Items: append([]T(nil), m.items[offset:end]...),
		Next:  strconv.Itoa(end),
		Done:  end == len(m.items),
	}, nil
}

// Append adds items to the end of the source.
func (m *MemorySource[T]) Append(items ...T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
}

// Prepend adds items to the front, as new content seen on refresh.
func (m *MemorySource[T]) Prepend(items ...T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(append([]T(nil), items...), m.items...)
}

// Len returns the number of items in the source.
func (m *MemorySource[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
