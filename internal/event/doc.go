// Package event provides a pub-sub event bus for decoupled inter-component
// communication in ripple.
//
// This package enables loose coupling between the feed session controller,
// playback synchronizer, engagement reconciler, and the TUI by allowing them
// to communicate through events rather than direct method calls. Components
// can publish events without knowing who will receive them, and subscribe to
// events without knowing who will produce them.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
// Session events:
//   - [SessionResetEvent]: Emitted when a session is superseded (mount, pull-to-refresh)
//   - [PageAppendedEvent]: Emitted when a fetched page is appended to the session
//   - [ActiveChangedEvent]: Emitted when the active item index changes
//
// Playback events:
//   - [TransportChangedEvent]: Emitted when an item's transport state changes
//
// Engagement events:
//   - [ReactionResultEvent]: Emitted when a reaction submission settles
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called synchronously
// and protected against panics - a panicking handler will not prevent other
// handlers from being called.
//
// # Basic Usage
//
//	bus := event.NewBus()
//
//	id := bus.Subscribe("session.active_changed", func(e event.Event) {
//	    changed := e.(event.ActiveChangedEvent)
//	    log.Printf("active item now %d", changed.NewIndex)
//	})
//
//	bus.Publish(event.NewActiveChangedEvent(0, 1, "item-2"))
//	bus.Unsubscribe(id)
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - session.reset, session.page_appended, session.active_changed
//   - playback.transport_changed
//   - engage.reaction_result
package event
