// Package gesture turns raw pointer interactions into discrete navigation
// intents for the feed. Classification is pure: given the same start and end
// samples, the same intent always comes back. The package has no knowledge
// of feed state; callers decide what an intent means.
package gesture

import (
	"math"
	"time"
)

// Intent is the discrete outcome of classifying a pointer interaction.
type Intent int

const (
	// None indicates the interaction was not a recognizable gesture.
	None Intent = iota
	// SwipeUp advances to the next item (finger moved up, deltaY negative).
	SwipeUp
	// SwipeDown retreats to the previous item (finger moved down).
	SwipeDown
)

// String returns the string representation of the intent.
func (i Intent) String() string {
	switch i {
	case SwipeUp:
		return "swipe_up"
	case SwipeDown:
		return "swipe_down"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// Point is a pointer position in pixels. The origin is the top-left corner
// of the scroll container, so larger Y is further down the screen.
type Point struct {
	X float64
	Y float64
}

// Sample is a pointer position observed at a moment in time.
type Sample struct {
	Point Point
	Time  time.Time
}

// Interaction is the start and end of a single pointer interaction.
// Only the first touch point of a multi-touch interaction should be
// recorded; callers drop secondary touches before classification.
type Interaction struct {
	Start Sample
	End   Sample
}

// Classifier classifies completed pointer interactions into intents.
// The zero value is not usable; construct with NewClassifier.
type Classifier struct {
	thresholdPx float64
	maxDuration time.Duration
}

// NewClassifier creates a Classifier with the given swipe threshold in
// pixels and the duration under which a gesture counts as fast.
func NewClassifier(thresholdPx float64, maxDuration time.Duration) *Classifier {
	return &Classifier{
		thresholdPx: thresholdPx,
		maxDuration: maxDuration,
	}
}

// Classify returns the intent for a completed interaction.
//
// An interaction is a vertical swipe only when the vertical travel exceeds
// the threshold and dominates the horizontal travel. It must also be fast
// enough: completed within the duration window, or long enough (twice the
// threshold) that a slow deliberate drag still counts.
func (c *Classifier) Classify(in Interaction) Intent {
	deltaY := in.End.Point.Y - in.Start.Point.Y
	deltaX := math.Abs(in.End.Point.X - in.Start.Point.X)
	elapsed := in.End.Time.Sub(in.Start.Time)

	absY := math.Abs(deltaY)
	if absY <= c.thresholdPx {
		return None
	}
	if absY <= deltaX {
		// Predominantly horizontal; not a feed gesture.
		return None
	}
	if elapsed >= c.maxDuration && absY <= 2*c.thresholdPx {
		return None
	}

	if deltaY < 0 {
		return SwipeUp
	}
	return SwipeDown
}
