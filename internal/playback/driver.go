// Package playback enforces the single-active-playback invariant and
// manages each item's media transport state. Transports are held in an
// arena keyed by item id, never by feed position, so navigation policy
// changes can't silently invalidate a handle.
package playback

import "time"

// DriverEventKind identifies an asynchronous driver notification.
type DriverEventKind int

const (
	// EventLoaded means media metadata is available and playback can start.
	EventLoaded DriverEventKind = iota
	// EventEnded means playback reached the end of the media.
	EventEnded
	// EventFailed means the media failed to load or decode.
	EventFailed
)

// DriverEvent is an asynchronous notification from a media driver.
type DriverEvent struct {
	Kind DriverEventKind
	// DurationMs accompanies EventLoaded when the media reports a duration.
	DurationMs int64
	// Err accompanies EventFailed.
	Err error
}

// EventSink receives driver events. Drivers call the sink on the UI event
// loop; a driver backed by real media plumbing must marshal its callbacks
// onto the loop before invoking it.
type EventSink func(DriverEvent)

// Driver is one media element's low-level controls. Implementations wrap
// whatever actually plays the stream; the transport state machine sits on
// top and never touches media plumbing directly.
type Driver interface {
	// Load begins loading the given URL. Completion or failure arrives
	// through the event sink.
	Load(url string) error

	// Play starts or resumes playback. Returns ErrAutoplayBlocked when the
	// platform's autoplay policy refuses; the transport treats that as a
	// pause, not an error.
	Play() error

	// Pause halts playback, keeping the current position.
	Pause() error

	// Seek moves the playhead to the given position in milliseconds.
	Seek(positionMs int64) error

	// SetMuted toggles audio muting.
	SetMuted(muted bool) error

	// Position returns the current playhead position in milliseconds.
	Position() int64

	// Duration returns the media duration in milliseconds, or 0 before
	// metadata is known.
	Duration() int64

	// Close releases the driver's resources.
	Close() error
}

// DriverFactory creates a driver for one item's media URL, wired to the
// given event sink.
type DriverFactory func(itemID, mediaURL string, sink EventSink) Driver

// Clock returns the current time. Replaceable in tests.
type Clock func() time.Time
