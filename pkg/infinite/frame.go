package infinite

import "github.com/samber/lo"

// Frame is the result of one render pass: the container variant plus a
// snapshot of the data and loading flag. Entries are built on demand so a
// virtualizing host only pays for what it instantiates.
type Frame[T comparable, V any] struct {
	Container Container
	// Items is the collection snapshot read for this pass.
	Items []T
	// Loading is the loading flag read for this pass.
	Loading bool

	loadingView V
	content     func(T) V
}

// Len returns the number of entries, including the loading slot.
func (f Frame[T, V]) Len() int {
	if f.Loading {
		return len(f.Items) + 1
	}
	return len(f.Items)
}

// ItemCount returns the number of data items.
func (f Frame[T, V]) ItemCount() int {
	return len(f.Items)
}

// HasLoadingSlot reports whether the stream ends with the loading indicator.
func (f Frame[T, V]) HasLoadingSlot() bool {
	return f.Loading
}

// Entry builds the entry at stream index i. It panics if i is out of range.
func (f Frame[T, V]) Entry(i int) Entry[T, V] {
	if i < 0 || i >= f.Len() {
		panic("infinite: entry index out of range")
	}
	if i == len(f.Items) {
		return Entry[T, V]{Kind: EntryLoading, Index: i, View: f.loadingView, Layout: loadingLayout}
	}
	return buildItem(f.content, i, f.Items[i])
}

// Entries builds the entries in [start, end), clamped to the stream.
func (f Frame[T, V]) Entries(start, end int) []Entry[T, V] {
	if start < 0 {
		start = 0
	}
	if end > f.Len() {
		end = f.Len()
	}
	if end <= start {
		return nil
	}
	out := make([]Entry[T, V], 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, f.Entry(i))
	}
	return out
}

// All builds every entry. Eager containers use this.
func (f Frame[T, V]) All() []Entry[T, V] {
	return f.Entries(0, f.Len())
}

// IndexOf returns the stream index of item, or -1.
func (f Frame[T, V]) IndexOf(item T) int {
	return lo.IndexOf(f.Items, item)
}
