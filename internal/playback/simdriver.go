package playback

import "time"

// SimDriver is a wall-clock simulated media driver for the terminal
// client, which cannot decode video. Load reports metadata immediately
// using the supplied duration hint; the playhead advances in real time
// while playing. End-of-media is detected by the transport's tick poll.
type SimDriver struct {
	sink       EventSink
	durationMs int64
	clock      Clock

	playing  bool
	muted    bool
	basisMs  int64     // accumulated position when last paused
	playedAt time.Time // wall time playback last started
	loaded   bool
	closed   bool
}

// NewSimDriverFactory returns a DriverFactory producing SimDrivers whose
// duration comes from hintMs when positive, else fallbackMs.
func NewSimDriverFactory(hintFor func(itemID string) int64, fallbackMs int64) DriverFactory {
	return func(itemID, mediaURL string, sink EventSink) Driver {
		dur := fallbackMs
		if hintFor != nil {
			if h := hintFor(itemID); h > 0 {
				dur = h
			}
		}
		return &SimDriver{
			sink:       sink,
			durationMs: dur,
			clock:      time.Now,
		}
	}
}

// Load reports metadata synchronously; simulated media has no network.
func (d *SimDriver) Load(url string) error {
	if d.closed {
		return nil
	}
	d.loaded = true
	d.sink(DriverEvent{Kind: EventLoaded, DurationMs: d.durationMs})
	return nil
}

// Play starts the simulated playhead.
func (d *SimDriver) Play() error {
	if d.playing {
		return nil
	}
	d.playing = true
	d.playedAt = d.clock()
	return nil
}

// Pause freezes the playhead.
func (d *SimDriver) Pause() error {
	if !d.playing {
		return nil
	}
	d.basisMs = d.Position()
	d.playing = false
	return nil
}

// Seek moves the playhead.
func (d *SimDriver) Seek(positionMs int64) error {
	d.basisMs = positionMs
	d.playedAt = d.clock()
	return nil
}

// SetMuted records the mute flag; simulated audio has nothing to silence.
func (d *SimDriver) SetMuted(muted bool) error {
	d.muted = muted
	return nil
}

// Position returns the simulated playhead in milliseconds.
func (d *SimDriver) Position() int64 {
	if !d.playing {
		return d.basisMs
	}
	return d.basisMs + d.clock().Sub(d.playedAt).Milliseconds()
}

// Duration returns the simulated duration once loaded.
func (d *SimDriver) Duration() int64 {
	if !d.loaded {
		return 0
	}
	return d.durationMs
}

// Close releases the driver.
func (d *SimDriver) Close() error {
	d.closed = true
	d.playing = false
	return nil
}
