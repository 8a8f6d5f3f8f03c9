// Package core provides the reactive bindings that feed an infinite list.
//
// A list never owns its data. The caller owns the item collection and the
// loading flag and hands the list read-only views of them through [Binding].
// Each render reads every binding once and treats the result as a snapshot.
//
// # Bindings
//
// Any type with a Value method is a Binding. [Observable] is the usual
// choice because hosts can subscribe to it and schedule a re-render:
//
//	items := core.NewObservable([]string{"a", "b"})
//	loading := core.NewObservable(false)
//	unsub := items.AddListener(func([]string) { h.Invalidate() })
//	defer unsub()
//
// [Const] wraps a fixed value for lists that never change.
//
// # Notifier
//
// [Notifier] broadcasts value-less events, such as "render needed".
//
// # Disposers
//
// [Disposers] collects cleanup functions and runs them once, in reverse
// order, mirroring the OnDispose contract of stateful widgets.
//
// Observable and Notifier are safe for concurrent use. Listeners run on the
// goroutine that called Set or Notify; hosts that render on a single loop
// must marshal the notification onto that loop themselves.
package core
