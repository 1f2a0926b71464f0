package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftwave/ripple/internal/engage"
	"github.com/driftwave/ripple/internal/feed"
)

// FeedService is what the model needs from the network layer. api.Client
// satisfies it; tests substitute a scripted fake.
type FeedService interface {
	FetchPage(ctx context.Context, req feed.FetchRequest) (feed.Page, error)
	SubmitReaction(ctx context.Context, itemID, emoji string) error
	PlayableURL(mediaURL string) string
}

// tickMsg drives time-based behavior: playback position polling, loop on
// end, controls auto-hide.
type tickMsg time.Time

// pageResultMsg carries the outcome of an async page fetch back to the
// controller, tagged with the generation at dispatch time so stale
// results can be discarded.
type pageResultMsg struct {
	generation uint64
	page       feed.Page
	err        error
}

// reactionResultMsg carries the outcome of an async reaction submission.
type reactionResultMsg struct {
	itemID string
	emoji  string
	err    error
}

// Commands

// tick returns a command that sends a tickMsg after the given interval.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchPage dispatches one page request. The controller has already
// marked the session loading; serialization is its concern, not ours.
func fetchPage(svc FeedService, req feed.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		page, err := svc.FetchPage(context.Background(), req)
		return pageResultMsg{generation: req.Generation, page: page, err: err}
	}
}

// submitReaction dispatches one reaction submission. The local mutation
// has already been applied; this only reports the remote outcome.
func submitReaction(svc FeedService, sub engage.Submission) tea.Cmd {
	return func() tea.Msg {
		err := svc.SubmitReaction(context.Background(), sub.ItemID, sub.Emoji)
		return reactionResultMsg{itemID: sub.ItemID, emoji: sub.Emoji, err: err}
	}
}
