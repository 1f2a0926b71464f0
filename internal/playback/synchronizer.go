package playback

import (
	"time"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/event"
	"github.com/driftwave/ripple/internal/logging"
)

// Synchronizer owns every item's transport and enforces the invariant that
// at most one item is in the Playing state at any instant. Switching the
// active item pauses the previous transport synchronously, in the same
// call, before the new one starts; there is no window where two items are
// audible.
//
// Transports live in an arena keyed by item id. Lookups by id rather than
// feed position mean a future insertion or eviction policy can't silently
// leave a handle pointing at the wrong item.
//
// Synchronizer methods run on the UI event loop and are not safe for
// concurrent use.
type Synchronizer struct {
	cfg     config.PlaybackConfig
	factory DriverFactory
	bus     *event.Bus
	log     *logging.Logger
	clock   Clock

	transports map[string]*Transport
	activeID   string
	disposed   bool
}

// NewSynchronizer creates a Synchronizer that builds drivers with the
// given factory. The bus may be nil.
func NewSynchronizer(cfg config.PlaybackConfig, factory DriverFactory, bus *event.Bus, log *logging.Logger) *Synchronizer {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Synchronizer{
		cfg:        cfg,
		factory:    factory,
		bus:        bus,
		log:        log.WithComponent("playback"),
		clock:      time.Now,
		transports: make(map[string]*Transport),
	}
}

// Ensure returns the transport for the given item, creating it on first
// use. mediaURL should already carry any access token the stream needs.
func (s *Synchronizer) Ensure(itemID, mediaURL string) *Transport {
	if t, ok := s.transports[itemID]; ok {
		return t
	}
	var t *Transport
	driver := s.factory(itemID, mediaURL, func(ev DriverEvent) {
		t.handleDriverEvent(ev)
	})
	t = newTransport(itemID, mediaURL, driver, s.cfg, s.bus, s.log)
	s.transports[itemID] = t
	return t
}

// SetActive makes itemID the single playing item. The previously active
// transport is paused and rewound before the new one is activated. An
// empty id deactivates everything.
func (s *Synchronizer) SetActive(itemID string) error {
	if s.disposed {
		return errors.ErrSessionDisposed
	}
	if itemID == s.activeID {
		return nil
	}

	if prev, ok := s.transports[s.activeID]; ok {
		prev.deactivate()
	}
	s.activeID = itemID
	if itemID == "" {
		return nil
	}

	t, ok := s.transports[itemID]
	if !ok {
		s.activeID = ""
		return errors.NewNotFoundError("transport", itemID)
	}
	t.activate(s.clock())
	return nil
}

// Active returns the active transport, or nil when none is active.
func (s *Synchronizer) Active() *Transport {
	if s.activeID == "" {
		return nil
	}
	return s.transports[s.activeID]
}

// Get returns the transport for an item, or nil if none exists yet.
func (s *Synchronizer) Get(itemID string) *Transport {
	return s.transports[itemID]
}

// PlayingCount returns how many transports are currently in the Playing
// state. The single-active invariant keeps this at most 1.
func (s *Synchronizer) PlayingCount() int {
	count := 0
	for _, t := range s.transports {
		if t.State() == StatePlaying {
			count++
		}
	}
	return count
}

// Tick advances time-driven behavior: the active transport's end-of-media
// loop check. Call on every UI tick.
func (s *Synchronizer) Tick() {
	if t := s.Active(); t != nil {
		t.tick()
	}
}

// Reset tears down all transports, for a session refresh: old items are
// discarded wholesale, so their transports go with them.
func (s *Synchronizer) Reset() {
	if prev, ok := s.transports[s.activeID]; ok {
		prev.deactivate()
	}
	for _, t := range s.transports {
		t.close()
	}
	s.transports = make(map[string]*Transport)
	s.activeID = ""
}

// Dispose stops any playing transport and releases all drivers. The
// synchronizer is unusable afterwards.
func (s *Synchronizer) Dispose() {
	if s.disposed {
		return
	}
	s.Reset()
	s.disposed = true
	s.log.Debug("synchronizer disposed")
}
