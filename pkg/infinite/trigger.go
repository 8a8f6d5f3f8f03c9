package infinite

// Subscription is the appearance hook for one instantiated item. The host
// registers it when it creates the item's view and cancels it when the view
// is removed.
type Subscription[T comparable, V any] struct {
	list     *List[T, V]
	item     T
	canceled bool
}

// Subscribe registers an appearance hook for item.
func (l *List[T, V]) Subscribe(item T) *Subscription[T, V] {
	sub := &Subscription[T, V]{list: l, item: item}
	l.subs[sub] = struct{}{}
	return sub
}

// Subscriptions returns the number of live item subscriptions.
func (l *List[T, V]) Subscriptions() int {
	return len(l.subs)
}

// ItemAppeared fires LoadMore if item is the last element of the snapshot
// read now. It reports whether LoadMore fired.
func (l *List[T, V]) ItemAppeared(item T) bool {
	if !IsLast(l.cfg.Data.Value(), item) {
		return false
	}
	l.fire("end-of-list")
	return true
}

// Item returns the subscribed item.
func (s *Subscription[T, V]) Item() T {
	return s.item
}

// Appear reports that the item entered the viewport. The last-item check
// runs against the live snapshot, never the one the item was built from.
// It reports whether LoadMore fired. Canceled subscriptions never fire.
func (s *Subscription[T, V]) Appear() bool {
	if s.canceled {
		return false
	}
	return s.list.ItemAppeared(s.item)
}

// Cancel unregisters the subscription. It is idempotent.
func (s *Subscription[T, V]) Cancel() {
	if s.canceled {
		return
	}
	s.detach()
}

// Canceled reports whether the subscription was canceled.
func (s *Subscription[T, V]) Canceled() bool {
	return s.canceled
}

func (s *Subscription[T, V]) detach() {
	s.canceled = true
	delete(s.list.subs, s)
}
