// Package scroll provides the viewport primitives a host needs to drive an
// infinite list: a scroll position with clamping or bouncing physics,
// fixed-extent virtualization ranges, appearance tracking and a
// pull-to-refresh gesture recognizer.
//
// Everything here is single-threaded and event driven. Callers feed drag
// deltas and viewport sizes in; listeners and recognizer callbacks come out.
package scroll
