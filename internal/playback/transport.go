package playback

import (
	"time"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/event"
	"github.com/driftwave/ripple/internal/logging"
)

// TransportState is one item's position in the playback state machine:
//
//	Idle → Loading → Ready → Playing ⇄ Paused
//
// Ended is transient: reaching the end of the media loops straight back to
// Playing, so there is no terminal "ended" presentation. Errored is
// reachable from Loading or Playing and is terminal for the item.
type TransportState int

const (
	StateIdle TransportState = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateEnded
	StateErrored
)

// String returns the string representation of the state.
func (s TransportState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Transport drives one item's media element. It owns the item's slice of
// playback state: transport state, mute flag, controls visibility timing,
// and the terminal error if the media failed. It never touches feed
// ordering or other items.
//
// Transport methods run on the UI event loop and are not safe for
// concurrent use.
type Transport struct {
	itemID   string
	mediaURL string
	driver   Driver
	cfg      config.PlaybackConfig
	bus      *event.Bus
	log      *logging.Logger

	state         TransportState
	muted         bool
	policyBlocked bool
	active        bool
	err           error

	// lastTouch is when the user last interacted with on-screen controls;
	// drives the auto-hide timer while playing.
	lastTouch time.Time
}

func newTransport(itemID, mediaURL string, driver Driver, cfg config.PlaybackConfig, bus *event.Bus, log *logging.Logger) *Transport {
	return &Transport{
		itemID:   itemID,
		mediaURL: mediaURL,
		driver:   driver,
		cfg:      cfg,
		bus:      bus,
		log:      log,
		state:    StateIdle,
		muted:    cfg.StartMuted,
	}
}

// activate makes this transport the playing one. From Idle it starts the
// load; from Ready or Paused it attempts playback immediately. An autoplay
// refusal lands in Paused with the policy-blocked affordance set, never in
// Errored.
func (t *Transport) activate(now time.Time) {
	t.active = true
	t.lastTouch = now

	switch t.state {
	case StateIdle:
		t.setState(StateLoading)
		if err := t.driver.Load(t.mediaURL); err != nil {
			t.fail(err)
		}
	case StateReady, StatePaused:
		t.play()
	case StateErrored, StateLoading, StatePlaying:
		// Nothing to do: loading completes via the sink, errored is
		// terminal for the item, playing is already the goal.
	}
}

// deactivate pauses the transport and rewinds to zero so re-entering the
// item later starts from the beginning. The mute flag resets to the
// per-item default: mute preference is never carried between items.
func (t *Transport) deactivate() {
	t.active = false
	t.policyBlocked = false
	t.muted = t.cfg.StartMuted

	switch t.state {
	case StatePlaying, StatePaused, StateEnded:
		_ = t.driver.Pause()
		_ = t.driver.Seek(0)
		_ = t.driver.SetMuted(t.muted)
		t.setState(StatePaused)
	case StateIdle, StateLoading, StateReady, StateErrored:
		// Never started; nothing audible to stop.
	}
}

// play attempts to start playback, falling back to Paused when the
// platform's autoplay policy refuses.
func (t *Transport) play() {
	if t.state == StateErrored {
		return
	}
	_ = t.driver.SetMuted(t.muted)
	if err := t.driver.Play(); err != nil {
		if errors.Is(err, errors.ErrAutoplayBlocked) {
			t.policyBlocked = true
			t.setState(StatePaused)
			t.log.Debug("autoplay blocked", "item", t.itemID)
			return
		}
		t.fail(err)
		return
	}
	t.policyBlocked = false
	t.setState(StatePlaying)
}

// pause halts playback, keeping position.
func (t *Transport) pause() {
	if t.state != StatePlaying {
		return
	}
	_ = t.driver.Pause()
	t.setState(StatePaused)
}

// TogglePlay flips between Playing and Paused. A toggle also counts as a
// user interaction for the controls timer.
func (t *Transport) TogglePlay(now time.Time) {
	t.lastTouch = now
	switch t.state {
	case StatePlaying:
		t.pause()
	case StatePaused, StateReady:
		t.play()
	case StateIdle, StateLoading, StateEnded, StateErrored:
	}
}

// Tap handles a tap on the item. When controls are hidden the tap both
// redisplays them and toggles play/pause in the same gesture; when
// visible it only toggles.
func (t *Transport) Tap(now time.Time) {
	t.TogglePlay(now)
}

// ToggleMute flips the mute flag for this item only.
func (t *Transport) ToggleMute(now time.Time) {
	t.lastTouch = now
	t.muted = !t.muted
	_ = t.driver.SetMuted(t.muted)
}

// Touch marks a user interaction, redisplaying controls without changing
// transport state.
func (t *Transport) Touch(now time.Time) {
	t.lastTouch = now
}

// ControlsVisible reports whether on-screen transport controls should be
// drawn. Controls auto-hide after the configured delay of inactivity
// while playing; in any other state they stay visible.
func (t *Transport) ControlsVisible(now time.Time) bool {
	if t.state != StatePlaying {
		return true
	}
	return now.Sub(t.lastTouch) < t.cfg.ControlsHideDelay()
}

// handleDriverEvent is the transport's event sink.
func (t *Transport) handleDriverEvent(ev DriverEvent) {
	switch ev.Kind {
	case EventLoaded:
		if t.state != StateLoading {
			return
		}
		t.setState(StateReady)
		if t.active {
			t.play()
		}
	case EventEnded:
		t.loop()
	case EventFailed:
		t.fail(ev.Err)
	}
}

// tick polls the driver position while playing and loops when the end is
// reached. Drivers that emit EventEnded themselves don't need this, but
// polling drivers rely on it.
func (t *Transport) tick() {
	if t.state != StatePlaying {
		return
	}
	dur := t.DurationMs()
	if dur > 0 && t.driver.Position() >= dur {
		t.loop()
	}
}

// loop restarts playback from zero. Reaching the end never advances the
// feed and never surfaces an "ended" state.
func (t *Transport) loop() {
	if t.state == StateErrored {
		return
	}
	t.setState(StateEnded)
	_ = t.driver.Seek(0)
	if t.active {
		t.play()
	} else {
		t.setState(StatePaused)
	}
}

// fail moves the transport to the terminal Errored state. The failure is
// isolated to this item; navigation and neighbors are unaffected.
func (t *Transport) fail(cause error) {
	t.err = errors.NewPlaybackError("media failed", cause).WithItem(t.itemID)
	t.setState(StateErrored)
	t.log.Error("transport errored", "item", t.itemID, "error", cause)
}

func (t *Transport) setState(next TransportState) {
	if t.state == next {
		return
	}
	old := t.state
	t.state = next
	if t.bus != nil {
		t.bus.Publish(event.NewTransportChangedEvent(t.itemID, old.String(), next.String()))
	}
}

// State returns the current transport state.
func (t *Transport) State() TransportState {
	return t.state
}

// ItemID returns the id of the item this transport drives.
func (t *Transport) ItemID() string {
	return t.itemID
}

// Muted reports whether this item's audio is muted.
func (t *Transport) Muted() bool {
	return t.muted
}

// PolicyBlocked reports whether the last play attempt was refused by the
// autoplay policy, so the view can show an explicit play affordance.
func (t *Transport) PolicyBlocked() bool {
	return t.policyBlocked
}

// Err returns the terminal playback error, if any.
func (t *Transport) Err() error {
	return t.err
}

// PositionMs returns the playhead position in milliseconds.
func (t *Transport) PositionMs() int64 {
	return t.driver.Position()
}

// DurationMs returns the best known duration: driver metadata when
// available, otherwise the configured default.
func (t *Transport) DurationMs() int64 {
	if d := t.driver.Duration(); d > 0 {
		return d
	}
	return t.cfg.DefaultDurationMs
}

func (t *Transport) close() {
	_ = t.driver.Close()
}
