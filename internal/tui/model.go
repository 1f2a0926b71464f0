package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/google/uuid"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/engage"
	"github.com/driftwave/ripple/internal/event"
	"github.com/driftwave/ripple/internal/feed"
	"github.com/driftwave/ripple/internal/gesture"
	"github.com/driftwave/ripple/internal/logging"
	"github.com/driftwave/ripple/internal/playback"
	"github.com/driftwave/ripple/internal/tui/styles"
)

// Model holds the TUI application state: the feed controller, the
// playback synchronizer, and everything the view needs to render one
// droplet at a time.
type Model struct {
	cfg *config.Config
	svc FeedService
	log *logging.Logger
	bus *event.Bus

	controller *feed.Controller
	sync       *playback.Synchronizer
	reconciler *engage.Reconciler
	picker     *engage.Picker
	pull       *gesture.PullTracker
	classifier *gesture.Classifier

	spin  spinner.Model
	clock playback.Clock

	// busSub is the event-trace subscription, released on quit.
	busSub string

	// dragStart is the press sample of an in-progress mouse drag, nil
	// when no drag is active.
	dragStart *gesture.Sample

	width    int
	height   int
	ready    bool
	quitting bool
	showHelp bool
	notice   string
}

// NewModel creates a new TUI model wired to the given feed service.
func NewModel(cfg *config.Config, svc FeedService, log *logging.Logger) Model {
	if log == nil {
		log = logging.NopLogger()
	}
	log = log.WithRun(uuid.NewString())
	bus := event.NewBus()
	busSub := bus.SubscribeAll(eventTrace(log))

	controller := feed.NewController(cfg.Feed, log, bus)

	// Terminal playback is simulated on the wall clock; duration hints
	// come from the item metadata the controller holds.
	hintFor := func(itemID string) int64 {
		if item := controller.Session().ItemByID(itemID); item != nil {
			return item.DurationHintMs
		}
		return 0
	}
	factory := playback.NewSimDriverFactory(hintFor, cfg.Playback.DefaultDurationMs)
	sync := playback.NewSynchronizer(cfg.Playback, factory, bus, log)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Primary

	return Model{
		cfg:        cfg,
		svc:        svc,
		log:        log.WithComponent("tui"),
		bus:        bus,
		controller: controller,
		sync:       sync,
		reconciler: engage.NewReconciler(cfg.API.UserID, bus, log),
		picker:     engage.NewPicker(),
		pull:       gesture.NewPullTracker(cfg.Gesture.PullThresholdPx),
		classifier: gesture.NewClassifier(cfg.Gesture.SwipeThresholdPx, cfg.Gesture.SwipeMaxDuration()),
		spin:       spin,
		clock:      time.Now,
		busSub:     busSub,
	}
}

// eventTrace returns a bus handler that writes every engine event to the
// structured log as one ordered stream. Publishers log their own domain
// messages; the trace is where cross-component ordering can be read back
// after a run, transports looping or erroring included.
func eventTrace(log *logging.Logger) event.Handler {
	log = log.WithComponent("events")
	return func(e event.Event) {
		switch ev := e.(type) {
		case event.SessionResetEvent:
			log.Debug(e.EventType(), "generation", ev.Generation, "seed", ev.Seed)
		case event.PageAppendedEvent:
			log.Debug(e.EventType(), "generation", ev.Generation, "appended", ev.Appended, "total", ev.Total, "has_more", ev.HasMore)
		case event.ActiveChangedEvent:
			log.Debug(e.EventType(), "from", ev.OldIndex, "to", ev.NewIndex, "item", ev.ItemID)
		case event.TransportChangedEvent:
			log.Debug(e.EventType(), "item", ev.ItemID, "from", ev.OldState, "to", ev.NewState)
		case event.ReactionResultEvent:
			log.Debug(e.EventType(), "item", ev.ItemID, "emoji", ev.Emoji, "error", ev.Err)
		default:
			log.Debug(e.EventType())
		}
	}
}

// activeTransport returns the transport for the active item, or nil.
func (m Model) activeTransport() *playback.Transport {
	item := m.controller.ActiveItem()
	if item == nil {
		return nil
	}
	return m.sync.Get(item.ID)
}

// activateCurrent points the synchronizer at the controller's active
// item, creating its transport on first visit.
func (m Model) activateCurrent() {
	item := m.controller.ActiveItem()
	if item == nil {
		_ = m.sync.SetActive("")
		return
	}
	m.sync.Ensure(item.ID, m.svc.PlayableURL(item.MediaURL))
	if err := m.sync.SetActive(item.ID); err != nil {
		m.log.Error("activate failed", "item", item.ID, "error", err)
	}
}
