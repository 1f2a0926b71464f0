// Package engage applies optimistic reaction mutations to feed items and
// reconciles them with the remote reaction service. It operates on
// individual item records and never touches feed ordering or playback.
package engage

import (
	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/event"
	"github.com/driftwave/ripple/internal/feed"
	"github.com/driftwave/ripple/internal/logging"
)

// Submission is the intent to send one reaction to the remote service.
// The reconciler returns these instead of performing network calls so the
// caller can dispatch them asynchronously and feed the result back via
// Resolve.
type Submission struct {
	ItemID string
	Emoji  string
}

// Reconciler mutates item reaction sets local-first. The local mutation is
// synchronous and idempotent; the remote call happens afterwards and its
// failure is surfaced as a notification, never rolled back locally. The
// inconsistency window closes on the next full reload.
//
// Reconciler methods run on the UI event loop and are not safe for
// concurrent use.
type Reconciler struct {
	userID string
	bus    *event.Bus
	log    *logging.Logger
}

// NewReconciler creates a Reconciler acting as userID. The bus may be nil.
func NewReconciler(userID string, bus *event.Bus, log *logging.Logger) *Reconciler {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Reconciler{
		userID: userID,
		bus:    bus,
		log:    log.WithComponent("engage"),
	}
}

// React adds the current user's reaction to the item's local set and
// returns the submission to dispatch. Adding an already-present reaction
// is a local no-op but still returns a submission; the remote endpoint is
// idempotent for the same (item, user, emoji) triple.
func (r *Reconciler) React(item *feed.VideoItem, emoji string) (Submission, error) {
	if item == nil {
		return Submission{}, errors.NewValidationError("item", nil, "must not be nil")
	}
	if emoji == "" {
		return Submission{}, errors.NewValidationError("emoji", emoji, "must not be empty")
	}

	added := item.AddReaction(emoji, r.userID)
	r.log.Debug("reaction applied locally",
		"item", item.ID,
		"emoji", emoji,
		"added", added,
		"count", item.ReactionCount(emoji))

	return Submission{ItemID: item.ID, Emoji: emoji}, nil
}

// Resolve records the outcome of a dispatched submission. Failures are
// logged and published for a transient notification; the optimistic local
// mutation stands either way.
func (r *Reconciler) Resolve(itemID, emoji string, err error) {
	if err != nil {
		r.log.Warn("reaction submission failed", "item", itemID, "emoji", emoji, "error", err)
	} else {
		r.log.Debug("reaction submission confirmed", "item", itemID, "emoji", emoji)
	}
	if r.bus != nil {
		r.bus.Publish(event.NewReactionResultEvent(itemID, emoji, err))
	}
}

// UserID returns the id reactions are attributed to.
func (r *Reconciler) UserID() string {
	return r.userID
}
