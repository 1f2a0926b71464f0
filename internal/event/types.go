package event

import "time"

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "session.reset", "playback.transport_changed")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Session Events
// -----------------------------------------------------------------------------

// SessionResetEvent is emitted when a feed session is superseded wholesale,
// on mount or on pull-to-refresh. Consumers holding per-item state should
// discard it: the new session's items carry a new generation.
type SessionResetEvent struct {
	baseEvent
	Generation uint64 // The new session generation
	Seed       int64  // The new session seed
}

// NewSessionResetEvent creates a SessionResetEvent.
func NewSessionResetEvent(generation uint64, seed int64) SessionResetEvent {
	return SessionResetEvent{
		baseEvent:  newBaseEvent("session.reset"),
		Generation: generation,
		Seed:       seed,
	}
}

// PageAppendedEvent is emitted when a successfully fetched page has been
// appended to the session's item list.
type PageAppendedEvent struct {
	baseEvent
	Generation uint64 // The session generation the page belongs to
	Appended   int    // Number of items appended
	Total      int    // Total items after the append
	HasMore    bool   // Whether the server reports further pages
}

// NewPageAppendedEvent creates a PageAppendedEvent.
func NewPageAppendedEvent(generation uint64, appended, total int, hasMore bool) PageAppendedEvent {
	return PageAppendedEvent{
		baseEvent:  newBaseEvent("session.page_appended"),
		Generation: generation,
		Appended:   appended,
		Total:      total,
		HasMore:    hasMore,
	}
}

// ActiveChangedEvent is emitted when the active item index changes via
// advance, retreat, or an explicit jump.
type ActiveChangedEvent struct {
	baseEvent
	OldIndex int    // The previously active index (-1 if none)
	NewIndex int    // The newly active index
	ItemID   string // The id of the newly active item
}

// NewActiveChangedEvent creates an ActiveChangedEvent.
func NewActiveChangedEvent(oldIndex, newIndex int, itemID string) ActiveChangedEvent {
	return ActiveChangedEvent{
		baseEvent: newBaseEvent("session.active_changed"),
		OldIndex:  oldIndex,
		NewIndex:  newIndex,
		ItemID:    itemID,
	}
}

// -----------------------------------------------------------------------------
// Playback Events
// -----------------------------------------------------------------------------

// TransportChangedEvent is emitted when an item's media transport moves to a
// new state. State strings come from the playback package's TransportState.
type TransportChangedEvent struct {
	baseEvent
	ItemID   string // The item whose transport changed
	OldState string // Previous transport state
	NewState string // New transport state
}

// NewTransportChangedEvent creates a TransportChangedEvent.
func NewTransportChangedEvent(itemID, oldState, newState string) TransportChangedEvent {
	return TransportChangedEvent{
		baseEvent: newBaseEvent("playback.transport_changed"),
		ItemID:    itemID,
		OldState:  oldState,
		NewState:  newState,
	}
}

// -----------------------------------------------------------------------------
// Engagement Events
// -----------------------------------------------------------------------------

// ReactionResultEvent is emitted when a reaction submission settles, either
// successfully or with an error. The local mutation has already been applied
// either way; Err is informational only.
type ReactionResultEvent struct {
	baseEvent
	ItemID string // The item the reaction targeted
	Emoji  string // The submitted reaction
	Err    error  // Non-nil if the remote submission failed
}

// NewReactionResultEvent creates a ReactionResultEvent.
func NewReactionResultEvent(itemID, emoji string, err error) ReactionResultEvent {
	return ReactionResultEvent{
		baseEvent: newBaseEvent("engage.reaction_result"),
		ItemID:    itemID,
		Emoji:     emoji,
		Err:       err,
	}
}
