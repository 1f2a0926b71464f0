package feed

import (
	"math/rand/v2"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/event"
	"github.com/driftwave/ripple/internal/logging"
)

// Phase describes the coarse state of the controller's current session.
type Phase int

const (
	// PhaseInitialLoading means the first page of a fresh session is in flight.
	PhaseInitialLoading Phase = iota
	// PhaseReady means at least one page has loaded.
	PhaseReady
	// PhaseInitialError means the initial load failed; the view is blank
	// with a retry affordance.
	PhaseInitialError
	// PhaseEmpty means the initial load succeeded with zero items.
	PhaseEmpty
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitialLoading:
		return "initial_loading"
	case PhaseReady:
		return "ready"
	case PhaseInitialError:
		return "initial_error"
	case PhaseEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Controller is the feed session state machine. It owns pagination and
// active-item selection; nothing else mutates the item list's length or
// ordering.
//
// The Controller performs no I/O itself. Operations that need a page fetch
// return a FetchRequest describing it; the caller dispatches the request
// asynchronously and feeds the outcome back through ApplyPage or
// ApplyFetchError, tagged with the request's generation. That keeps the
// controller deterministic and keeps fetches serialized: a new request is
// only handed out while no other is outstanding.
//
// Controller is not safe for concurrent use; all methods run on the UI
// event loop.
type Controller struct {
	cfg config.FeedConfig
	log *logging.Logger
	bus *event.Bus

	session    *Session
	generation uint64
	loading    bool
	initialErr error
	pageErr    error
	disposed   bool

	// seedFn draws a session seed; replaceable in tests.
	seedFn func() int64
}

// NewController creates a Controller. The bus may be nil, in which case no
// events are published.
func NewController(cfg config.FeedConfig, log *logging.Logger, bus *event.Bus) *Controller {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Controller{
		cfg:    cfg,
		log:    log.WithComponent("feed"),
		bus:    bus,
		seedFn: rand.Int64,
	}
}

// LoadInitial supersedes any current session with a fresh one and returns
// the fetch request for its first page. Used on mount, on pull-to-refresh,
// and for the "try again" affordance after an initial-load failure.
//
// Any fetch still in flight for the old session will be discarded when its
// result arrives, because its generation no longer matches.
func (c *Controller) LoadInitial() FetchRequest {
	c.generation++
	c.session = &Session{
		Generation: c.generation,
		Seed:       c.seedFn(),
		HasMore:    true,
	}
	c.loading = true
	c.initialErr = nil
	c.pageErr = nil

	c.log.Info("session reset",
		"generation", c.session.Generation,
		"seed", c.session.Seed,
	)
	c.publish(event.NewSessionResetEvent(c.session.Generation, c.session.Seed))

	return FetchRequest{
		Limit:      c.cfg.PageSize,
		Seed:       c.session.Seed,
		Cursor:     "",
		Generation: c.session.Generation,
	}
}

// ApplyPage applies a fetched page to the session. Results tagged with a
// superseded generation are silently discarded and reported as not applied;
// their eventual arrival is harmless.
func (c *Controller) ApplyPage(gen uint64, page Page) bool {
	if c.disposed || c.session == nil || gen != c.session.Generation {
		c.log.Debug("stale page discarded", "result_generation", gen)
		return false
	}

	c.loading = false
	c.pageErr = nil
	c.initialErr = nil
	c.session.Items = append(c.session.Items, page.Items...)
	c.session.Cursor = page.NextCursor
	c.session.HasMore = page.HasMore

	c.log.Info("page appended",
		"generation", gen,
		"appended", len(page.Items),
		"total", len(c.session.Items),
		"has_more", page.HasMore,
	)
	c.publish(event.NewPageAppendedEvent(gen, len(page.Items), len(c.session.Items), page.HasMore))
	return true
}

// ApplyFetchError records a failed fetch. An initial-load failure blanks
// the session to an error view; a pagination failure keeps all loaded
// items visible, leaves the cursor untouched so the same page can be
// retried, and only surfaces a retry affordance.
func (c *Controller) ApplyFetchError(gen uint64, err error) {
	if c.disposed || c.session == nil || gen != c.session.Generation {
		c.log.Debug("stale fetch error discarded", "result_generation", gen)
		return
	}

	c.loading = false
	if len(c.session.Items) == 0 {
		c.initialErr = err
		c.log.Error("initial load failed", "generation", gen, "error", err)
	} else {
		c.pageErr = err
		c.log.Warn("pagination failed", "generation", gen, "cursor", c.session.Cursor, "error", err)
	}
}

// Advance moves to the next item when one exists. It reports whether the
// active index changed, and returns a non-nil FetchRequest when the move
// leaves the session within the prefetch threshold of the end and a
// speculative fetch should be dispatched.
//
// Reaching the end of a video never advances; looping keeps control with
// the user.
func (c *Controller) Advance() (bool, *FetchRequest) {
	if c.disposed || c.session == nil || len(c.session.Items) == 0 {
		return false, nil
	}

	moved := false
	if c.session.ActiveIndex < len(c.session.Items)-1 {
		old := c.session.ActiveIndex
		c.session.ActiveIndex++
		moved = true
		c.publishActiveChanged(old)
	}

	if c.session.ActiveIndex >= len(c.session.Items)-c.cfg.PrefetchThreshold {
		return moved, c.maybeFetch()
	}
	return moved, nil
}

// Retreat moves to the previous item. At index zero it is a no-op.
func (c *Controller) Retreat() bool {
	if c.disposed || c.session == nil || len(c.session.Items) == 0 {
		return false
	}
	if c.session.ActiveIndex == 0 {
		return false
	}
	old := c.session.ActiveIndex
	c.session.ActiveIndex--
	c.publishActiveChanged(old)
	return true
}

// JumpTo selects an explicit index, e.g. from the position indicator.
func (c *Controller) JumpTo(index int) error {
	if c.disposed || c.session == nil {
		return errors.ErrSessionDisposed
	}
	if index < 0 || index >= len(c.session.Items) {
		return errors.NewFeedError("jump target out of bounds", errors.ErrIndexOutOfRange).
			WithGeneration(c.session.Generation)
	}
	if index == c.session.ActiveIndex {
		return nil
	}
	old := c.session.ActiveIndex
	c.session.ActiveIndex = index
	c.publishActiveChanged(old)
	return nil
}

// RetryPage returns a fetch request retrying the last failed pagination,
// using the unchanged cursor. Returns nil when nothing is retryable.
func (c *Controller) RetryPage() *FetchRequest {
	if c.disposed || c.session == nil || c.pageErr == nil {
		return nil
	}
	c.pageErr = nil
	return c.maybeFetch()
}

// maybeFetch hands out a fetch request for the next page unless one is
// already outstanding or the feed is exhausted. Serialization lives here:
// the loading flag guards against a second in-flight page.
func (c *Controller) maybeFetch() *FetchRequest {
	if c.loading || !c.session.HasMore {
		return nil
	}
	c.loading = true
	return &FetchRequest{
		Limit:      c.cfg.PageSize,
		Seed:       c.session.Seed,
		Cursor:     c.session.Cursor,
		Generation: c.session.Generation,
	}
}

func (c *Controller) publishActiveChanged(oldIndex int) {
	item := c.session.ActiveItem()
	id := ""
	if item != nil {
		id = item.ID
	}
	c.publish(event.NewActiveChangedEvent(oldIndex, c.session.ActiveIndex, id))
}

func (c *Controller) publish(e event.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

// Session returns the current session, or nil before the first LoadInitial.
func (c *Controller) Session() *Session {
	return c.session
}

// Items returns the current session's items.
func (c *Controller) Items() []*VideoItem {
	if c.session == nil {
		return nil
	}
	return c.session.Items
}

// ActiveIndex returns the current active index.
func (c *Controller) ActiveIndex() int {
	if c.session == nil {
		return 0
	}
	return c.session.ActiveIndex
}

// ActiveItem returns the active item, or nil while the session is empty.
func (c *Controller) ActiveItem() *VideoItem {
	if c.session == nil {
		return nil
	}
	return c.session.ActiveItem()
}

// Loading reports whether a page fetch is outstanding.
func (c *Controller) Loading() bool {
	return c.loading
}

// Generation returns the current session generation.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Phase returns the coarse state of the current session.
func (c *Controller) Phase() Phase {
	switch {
	case c.session == nil || (len(c.session.Items) == 0 && c.loading):
		return PhaseInitialLoading
	case c.initialErr != nil:
		return PhaseInitialError
	case len(c.session.Items) == 0:
		return PhaseEmpty
	default:
		return PhaseReady
	}
}

// InitialErr returns the error that blanked the session, if any.
func (c *Controller) InitialErr() error {
	return c.initialErr
}

// PageErr returns the last pagination error, if any. Loaded items remain
// valid while this is set.
func (c *Controller) PageErr() error {
	return c.pageErr
}

// Dispose tears the controller down. In-flight fetch results arriving
// afterwards are discarded.
func (c *Controller) Dispose() {
	c.disposed = true
	c.log.Debug("controller disposed", "generation", c.generation)
}
