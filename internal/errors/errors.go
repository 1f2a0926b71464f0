// Package errors provides centralized error definitions and error handling
// utilities for the ripple codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - FeedError: errors related to feed sessions and pagination
//   - PlaybackError: errors related to media transport state
//   - ReactionError: errors related to reaction submission
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//   - TimeoutError: operation timed out
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewFeedError("page fetch failed", errors.ErrFeedUnavailable)
//
//	// Semantic error
//	err := errors.NewNotFoundError("item", "abc123")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrFeedExhausted) { ... }
//
//	var feedErr *errors.FeedError
//	if errors.As(err, &feedErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Feed-related sentinel errors
var (
	// ErrFeedUnavailable indicates the feed service could not be reached.
	ErrFeedUnavailable = New("feed service unavailable")
	// ErrFeedExhausted indicates the session has no further pages.
	ErrFeedExhausted = New("feed exhausted")
	// ErrFetchInFlight indicates a page fetch is already outstanding.
	ErrFetchInFlight = New("page fetch already in flight")
	// ErrStaleGeneration indicates a result arrived for a superseded session.
	ErrStaleGeneration = New("stale session generation")
	// ErrIndexOutOfRange indicates a navigation target outside current bounds.
	ErrIndexOutOfRange = New("index out of range")
	// ErrSessionDisposed indicates an operation on a disposed session controller.
	ErrSessionDisposed = New("session controller disposed")
)

// Playback-related sentinel errors
var (
	// ErrTransportNotFound indicates no transport is registered for an item.
	ErrTransportNotFound = New("transport not found")
	// ErrAutoplayBlocked indicates the platform refused to start playback.
	ErrAutoplayBlocked = New("autoplay blocked by platform policy")
	// ErrMediaFailed indicates the media element failed to load or decode.
	ErrMediaFailed = New("media load or decode failed")
	// ErrInvalidTransition indicates a transport state transition is not allowed.
	ErrInvalidTransition = New("invalid transport state transition")
)

// Reaction-related sentinel errors
var (
	// ErrReactionRejected indicates the reaction service refused the submission.
	ErrReactionRejected = New("reaction rejected by service")
	// ErrNoActivePicker indicates a picker commit with no open picker.
	ErrNoActivePicker = New("no active reaction picker")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message   string
	cause     error
	retryable bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// FeedError represents an error from feed session or pagination operations.
type FeedError struct {
	baseError
	// Cursor is the continuation token the failed operation used, if any.
	Cursor string
	// Generation is the session generation the operation belonged to.
	Generation uint64
}

// NewFeedError creates a new FeedError wrapping the given cause.
// Feed errors are retryable by default: pagination failures keep the
// session intact and the same cursor may be retried.
func NewFeedError(message string, cause error) *FeedError {
	return &FeedError{
		baseError: baseError{
			message:   message,
			cause:     cause,
			retryable: true,
		},
	}
}

// WithCursor attaches the cursor in use when the error occurred.
func (e *FeedError) WithCursor(cursor string) *FeedError {
	e.Cursor = cursor
	return e
}

// WithGeneration attaches the session generation of the failed operation.
func (e *FeedError) WithGeneration(gen uint64) *FeedError {
	e.Generation = gen
	return e
}

// PlaybackError represents an error from a media transport.
type PlaybackError struct {
	baseError
	// ItemID identifies the feed item whose transport failed.
	ItemID string
}

// NewPlaybackError creates a new PlaybackError wrapping the given cause.
// Playback errors are terminal for the affected item and not retryable.
func NewPlaybackError(message string, cause error) *PlaybackError {
	return &PlaybackError{
		baseError: baseError{
			message:   message,
			cause:     cause,
			retryable: false,
		},
	}
}

// WithItem attaches the affected item id.
func (e *PlaybackError) WithItem(itemID string) *PlaybackError {
	e.ItemID = itemID
	return e
}

// ReactionError represents a failure to record a reaction remotely.
// The optimistic local mutation is never rolled back, so these errors are
// informational: the user sees a transient notice and the next full reload
// reconciles state.
type ReactionError struct {
	baseError
	// ItemID identifies the item the reaction targeted.
	ItemID string
	// Emoji is the reaction that failed to submit.
	Emoji string
}

// NewReactionError creates a new ReactionError wrapping the given cause.
func NewReactionError(message string, cause error) *ReactionError {
	return &ReactionError{
		baseError: baseError{
			message:   message,
			cause:     cause,
			retryable: true,
		},
	}
}

// WithTarget attaches the item and emoji the failed submission targeted.
func (e *ReactionError) WithTarget(itemID, emoji string) *ReactionError {
	e.ItemID = itemID
	e.Emoji = emoji
	return e
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError indicates a resource could not be found.
type NotFoundError struct {
	baseError
	Resource string
	ID       string
}

// NewNotFoundError creates a NotFoundError for the given resource and id.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message: fmt.Sprintf("%s not found: %s", resource, id),
		},
		Resource: resource,
		ID:       id,
	}
}

// ValidationError indicates invalid input or state.
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a ValidationError for the given field and value.
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message: fmt.Sprintf("invalid %s (%v): %s", field, value, reason),
		},
		Field: field,
		Value: value,
	}
}

// TimeoutError indicates an operation exceeded its deadline.
type TimeoutError struct {
	baseError
	Operation string
}

// NewTimeoutError creates a TimeoutError for the given operation.
func NewTimeoutError(operation string) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			message:   fmt.Sprintf("%s timed out", operation),
			cause:     ErrTimeout,
			retryable: true,
		},
		Operation: operation,
	}
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// retryable is implemented by errors that know whether they are transient.
type retryable interface {
	IsRetryable() bool
}

// IsRetryable reports whether the error is transient and the operation may
// succeed on retry. Errors that do not implement the retryable interface
// are treated as non-retryable.
func IsRetryable(err error) bool {
	var r retryable
	if errors.As(err, &r) {
		return r.IsRetryable()
	}
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrFeedUnavailable)
}

// IsStale reports whether the error indicates a result from a superseded
// session generation, which callers should silently discard.
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleGeneration)
}
