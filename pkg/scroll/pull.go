package scroll

// DefaultPullTrigger is the overscroll distance a pull must reach before
// releasing it starts a refresh.
const DefaultPullTrigger = 80.0

// PullState is the state of a PullRecognizer.
type PullState int

const (
	// PullIdle means no pull is in progress.
	PullIdle PullState = iota
	// PullDragging means a drag started at the top and has not passed the trigger.
	PullDragging
	// PullArmed means releasing now starts a refresh.
	PullArmed
	// PullRefreshing means a refresh is running and its done callback is pending.
	PullRefreshing
)

func (s PullState) String() string {
	switch s {
	case PullDragging:
		return "dragging"
	case PullArmed:
		return "armed"
	case PullRefreshing:
		return "refreshing"
	default:
		return "idle"
	}
}

// PullRecognizer detects a completed pull-down at the top of a scroll
// position and owns the refresh busy state.
type PullRecognizer struct {
	// Trigger is the overscroll distance that arms the refresh.
	// Zero means DefaultPullTrigger.
	Trigger float64
	// OnRefresh is called once per completed pull with a done callback.
	OnRefresh func(done func())
	// OnStateChange observes state transitions.
	OnStateChange func(PullState)

	position *Position
	state    PullState
	token    int
}

// NewPullRecognizer creates a recognizer bound to position.
func NewPullRecognizer(position *Position, onRefresh func(done func())) *PullRecognizer {
	return &PullRecognizer{position: position, OnRefresh: onRefresh}
}

// State returns the current state.
func (r *PullRecognizer) State() PullState {
	return r.state
}

// Refreshing reports whether a refresh is waiting for its done callback.
func (r *PullRecognizer) Refreshing() bool {
	return r.state == PullRefreshing
}

// DragStart begins tracking if the position is at the top. It is ignored
// while refreshing.
func (r *PullRecognizer) DragStart() {
	if r.state == PullRefreshing || r.position == nil || !r.position.AtTop() {
		return
	}
	r.setState(PullDragging)
}

// DragUpdate re-evaluates the pull distance after the host applied a drag.
func (r *PullRecognizer) DragUpdate() {
	if r.state != PullDragging && r.state != PullArmed {
		return
	}
	if r.pullDistance() >= r.trigger() {
		r.setState(PullArmed)
	} else {
		r.setState(PullDragging)
	}
}

// DragEnd completes the gesture. It reports whether a refresh started.
func (r *PullRecognizer) DragEnd() bool {
	switch r.state {
	case PullArmed:
		if r.OnRefresh == nil {
			r.setState(PullIdle)
			return false
		}
		r.token++
		token := r.token
		r.setState(PullRefreshing)
		r.OnRefresh(func() { r.finish(token) })
		return true
	case PullDragging:
		r.setState(PullIdle)
	}
	return false
}

// Cancel abandons an in-progress drag without refreshing.
func (r *PullRecognizer) Cancel() {
	if r.state == PullDragging || r.state == PullArmed {
		r.setState(PullIdle)
	}
}

func (r *PullRecognizer) finish(token int) {
	if token != r.token || r.state != PullRefreshing {
		return
	}
	r.setState(PullIdle)
}

func (r *PullRecognizer) pullDistance() float64 {
	if r.position == nil {
		return 0
	}
	if over := r.position.Overscroll(); over < 0 {
		return -over
	}
	return 0
}

func (r *PullRecognizer) trigger() float64 {
	if r.Trigger > 0 {
		return r.Trigger
	}
	return DefaultPullTrigger
}

func (r *PullRecognizer) setState(state PullState) {
	if r.state == state {
		return
	}
	r.state = state
	if r.OnStateChange != nil {
		r.OnStateChange(state)
	}
}
