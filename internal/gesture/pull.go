package gesture

// pullCapSlackPx is how far past the threshold the damped pull distance may
// grow, giving the gesture visible resistance near the cap.
const pullCapSlackPx = 20

// PullPhase describes where a pull-to-refresh interaction currently stands.
type PullPhase int

const (
	// PullIdle means no pull interaction is in progress.
	PullIdle PullPhase = iota
	// PullDragging means a pull is in progress but has not armed a refresh.
	PullDragging
	// PullArmed means the pull crossed the threshold; releasing fires a refresh.
	PullArmed
)

// String returns the string representation of the phase.
func (p PullPhase) String() string {
	switch p {
	case PullIdle:
		return "idle"
	case PullDragging:
		return "dragging"
	case PullArmed:
		return "armed"
	default:
		return "unknown"
	}
}

// PullTracker tracks a single pull-to-refresh interaction. A pull only
// begins when the container's scroll offset is exactly zero at gesture
// start; pulls beginning mid-scroll are ignored entirely.
//
// Raw drag distance is damped 2:1 and capped just past the threshold, so
// the indicator moves at half finger speed and stalls near the top. The
// tracker is not safe for concurrent use; each interaction is sequential
// on the UI event loop.
type PullTracker struct {
	thresholdPx float64
	phase       PullPhase
	startY      float64
	distance    float64
}

// NewPullTracker creates a PullTracker that arms a refresh once the damped
// pull distance crosses thresholdPx.
func NewPullTracker(thresholdPx float64) *PullTracker {
	return &PullTracker{thresholdPx: thresholdPx}
}

// Begin starts tracking a pull. scrollOffset is the container's current
// vertical scroll position; anything other than zero means the gesture is
// ordinary scrolling and the tracker stays idle.
func (t *PullTracker) Begin(startY, scrollOffset float64) {
	if scrollOffset != 0 {
		t.reset()
		return
	}
	t.phase = PullDragging
	t.startY = startY
	t.distance = 0
}

// Update feeds the current pointer Y position into an active pull.
// It returns the damped pull distance. Calls while idle return 0.
func (t *PullTracker) Update(currentY float64) float64 {
	if t.phase == PullIdle {
		return 0
	}

	raw := (currentY - t.startY) * 0.5
	if raw < 0 {
		raw = 0
	}
	if cap := t.thresholdPx + pullCapSlackPx; raw > cap {
		raw = cap
	}
	t.distance = raw

	if t.distance > t.thresholdPx {
		t.phase = PullArmed
	} else {
		t.phase = PullDragging
	}
	return t.distance
}

// Release ends the interaction. It reports true when the pull was armed,
// meaning the caller should trigger a refresh. Releasing below the
// threshold cancels with no side effects.
func (t *PullTracker) Release() bool {
	armed := t.phase == PullArmed
	t.reset()
	return armed
}

// Cancel abandons the interaction without firing, regardless of phase.
func (t *PullTracker) Cancel() {
	t.reset()
}

// Phase returns the tracking phase.
func (t *PullTracker) Phase() PullPhase {
	return t.phase
}

// Distance returns the current damped pull distance in pixels.
func (t *PullTracker) Distance() float64 {
	return t.distance
}

// Progress returns the pull distance as a fraction of the threshold,
// clamped to [0, 1]. Useful for rendering the refresh indicator.
func (t *PullTracker) Progress() float64 {
	if t.thresholdPx == 0 {
		return 0
	}
	p := t.distance / t.thresholdPx
	if p > 1 {
		p = 1
	}
	return p
}

func (t *PullTracker) reset() {
	t.phase = PullIdle
	t.startY = 0
	t.distance = 0
}
