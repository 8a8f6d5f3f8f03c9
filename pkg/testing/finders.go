package testing

import (
	"fmt"

	"github.com/go-drift/infinitelist/pkg/infinite"
)

// Match describes one instantiated entry for finders.
type Match struct {
	Index int
	Kind  infinite.EntryKind
	// Item is the entry's identity, nil for the loading slot.
	Item    any
	View    any
	Visible bool
	Failed  bool
}

// Finder locates entries in the last pumped frame.
type Finder interface {
	// Matches reports whether m is selected.
	Matches(m Match) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []Match
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() Match {
	if len(r.matches) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no entries: %s", desc))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) Match {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.finder.Description()))
	}
	return r.matches[index]
}

// All returns all matches in stream order.
func (r FinderResult) All() []Match {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

type predicateFinder struct {
	fn   func(Match) bool
	desc string
}

func (f predicateFinder) Matches(m Match) bool { return f.fn(m) }
func (f predicateFinder) Description() string { return f.desc }

// ByItem matches the entry whose identity equals item.
func ByItem(item any) Finder {
	return predicateFinder{
		fn:   func(m Match) bool { return m.Kind == infinite.EntryItem && m.Item == item },
		desc: fmt.Sprintf("ByItem(%v)", item),
	}
}

// ByLoading matches the loading slot.
func ByLoading() Finder {
	return ByKind(infinite.EntryLoading)
}

// ByKind matches entries of kind.
func ByKind(kind infinite.EntryKind) Finder {
	return predicateFinder{
		fn:   func(m Match) bool { return m.Kind == kind },
		desc: fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByView matches entries whose view formats to text.
func ByView(text string) Finder {
	return predicateFinder{
		fn:   func(m Match) bool { return fmt.Sprint(m.View) == text },
		desc: fmt.Sprintf("ByView(%q)", text),
	}
}

// Visible matches entries in the visible set.
func Visible() Finder {
	return predicateFinder{
		fn:   func(m Match) bool { return m.Visible },
		desc: "Visible()",
	}
}

// ByPredicate matches entries satisfying fn.
func ByPredicate(fn func(Match) bool) Finder {
	return predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}
