// Package feed is a caller-side pagination layer for infinite lists.
//
// A Source fetches pages by cursor. A Feed owns the data and loading
// bindings an infinite.List reads, and implements the caller obligations
// the list leaves open: LoadMore is a no-op while a page is in flight or
// the source is exhausted, and Refresh restarts from the first page.
//
// Fetches run off the UI loop when Options.Dispatch is set; their results
// are applied through Dispatch so bindings only change on the UI loop.
package feed
