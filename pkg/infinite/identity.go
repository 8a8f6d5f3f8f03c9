package infinite

import "github.com/samber/lo"

// IsLast reports whether item is the last element of snapshot.
// An empty snapshot has no last element.
func IsLast[T comparable](snapshot []T, item T) bool {
	last, ok := lo.Last(snapshot)
	return ok && last == item
}

// Duplicates returns the items that occur more than once in snapshot,
// in first-seen order.
func Duplicates[T comparable](snapshot []T) []T {
	return lo.FindDuplicates(snapshot)
}
