package scroll

// VisibilityTracker turns successive visible sets into appear and
// disappear events.
type VisibilityTracker[K comparable] struct {
	visible map[K]struct{}
}

// NewVisibilityTracker creates an empty tracker.
func NewVisibilityTracker[K comparable]() *VisibilityTracker[K] {
	return &VisibilityTracker[K]{visible: make(map[K]struct{})}
}

// Update records keys as the current visible set. appeared lists keys that
// were not visible before, in the order given; disappeared lists keys that
// left, in no particular order.
func (v *VisibilityTracker[K]) Update(keys []K) (appeared, disappeared []K) {
	next := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := next[key]; dup {
			continue
		}
		next[key] = struct{}{}
		if _, was := v.visible[key]; !was {
			appeared = append(appeared, key)
		}
	}
	for key := range v.visible {
		if _, still := next[key]; !still {
			disappeared = append(disappeared, key)
		}
	}
	v.visible = next
	return appeared, disappeared
}

// Visible reports whether key is in the current visible set.
func (v *VisibilityTracker[K]) Visible(key K) bool {
	_, ok := v.visible[key]
	return ok
}

// Mark adds key to the visible set and reports whether it was newly visible.
func (v *VisibilityTracker[K]) Mark(key K) bool {
	if _, ok := v.visible[key]; ok {
		return false
	}
	v.visible[key] = struct{}{}
	return true
}

// Forget removes key without emitting an event, so a later Update reports
// it as appeared again.
func (v *VisibilityTracker[K]) Forget(key K) {
	delete(v.visible, key)
}

// Reset clears the visible set.
func (v *VisibilityTracker[K]) Reset() {
	clear(v.visible)
}
