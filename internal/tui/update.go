package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftwave/ripple/internal/feed"
	"github.com/driftwave/ripple/internal/gesture"
)

// Init starts the tick loop and kicks off the initial page load.
func (m Model) Init() tea.Cmd {
	req := m.controller.LoadInitial()
	return tea.Batch(
		tick(m.cfg.TUI.TickInterval()),
		m.spin.Tick,
		fetchPage(m.svc, req),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.sync.Tick()
		return m, tick(m.cfg.TUI.TickInterval())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case pageResultMsg:
		return m.handlePageResult(msg)

	case reactionResultMsg:
		m.reconciler.Resolve(msg.itemID, msg.emoji, msg.err)
		if msg.err != nil {
			m.notice = "reaction failed, will reconcile on next refresh"
		} else {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handlePageResult feeds an async fetch outcome back into the controller.
// Results from a superseded session generation are discarded wholesale.
func (m Model) handlePageResult(msg pageResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.controller.ApplyFetchError(msg.generation, msg.err)
		return m, nil
	}

	hadActive := m.controller.ActiveItem() != nil
	if !m.controller.ApplyPage(msg.generation, msg.page) {
		return m, nil
	}

	// First page of a session: start playing the first item.
	if !hadActive && m.controller.ActiveItem() != nil {
		m.activateCurrent()
	}
	return m, nil
}

// handleKeypress processes keyboard input. The picker, when open,
// captures navigation keys.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.IsOpen() {
		return m.handlePickerKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.sync.Dispose()
		m.controller.Dispose()
		m.bus.Unsubscribe(m.busSub)
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	// The rest of the key surface is live only once the initial page is in.
	if m.controller.ActiveItem() == nil {
		switch m.controller.Phase() {
		case feed.PhaseInitialError, feed.PhaseEmpty:
			if s := msg.String(); s == "R" || s == "enter" {
				m, cmd := m.refresh()
				return m, cmd
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		return m, m.advance()

	case "k", "up":
		m.retreat()
		return m, nil

	case " ":
		if t := m.activeTransport(); t != nil {
			t.TogglePlay(m.clock())
		}
		return m, nil

	case "m":
		if t := m.activeTransport(); t != nil {
			t.ToggleMute(m.clock())
		}
		return m, nil

	case "r":
		m.picker.Open(m.controller.ActiveItem().ID)
		return m, nil

	case "R":
		m, cmd := m.refresh()
		return m, cmd

	case "p":
		return m, m.retryPage()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(msg.String())
		m.jumpTo(n - 1)
		return m, nil

	case "0":
		m.jumpTo(9)
		return m, nil
	}

	return m, nil
}

// handlePickerKey processes keyboard input while the reaction picker is
// open.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.picker.Prev()
	case "right", "l":
		m.picker.Next()
	case "enter", " ":
		itemID, emoji, err := m.picker.Confirm()
		if err != nil {
			return m, nil
		}
		m, cmd := m.react(itemID, emoji)
		return m, cmd
	case "esc", "q", "r":
		m.picker.Cancel()
	}
	return m, nil
}

// handleMouse turns terminal mouse reporting into feed gestures: drags
// classify as swipes, wheel events navigate, and a motionless click taps
// the player.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.retreat()
			return m, nil
		case tea.MouseButtonWheelDown:
			return m, m.advance()
		case tea.MouseButtonLeft:
			sample := gesture.Sample{
				Point: gesture.Point{X: float64(msg.X), Y: float64(msg.Y)},
				Time:  m.clock(),
			}
			m.dragStart = &sample
			// Pull-to-refresh only arms from the top of the feed.
			offset := float64(m.controller.ActiveIndex())
			m.pull.Begin(sample.Point.Y, offset)
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.dragStart != nil {
			m.pull.Update(float64(msg.Y))
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.dragStart == nil {
			return m, nil
		}
		start := *m.dragStart
		m.dragStart = nil

		if m.pull.Release() {
			m, cmd := m.refresh()
			return m, cmd
		}

		end := gesture.Sample{
			Point: gesture.Point{X: float64(msg.X), Y: float64(msg.Y)},
			Time:  m.clock(),
		}
		switch m.classifier.Classify(gesture.Interaction{Start: start, End: end}) {
		case gesture.SwipeUp:
			return m, m.advance()
		case gesture.SwipeDown:
			m.retreat()
			return m, nil
		case gesture.None:
			if t := m.activeTransport(); t != nil {
				t.Tap(m.clock())
			}
		}
		return m, nil
	}

	return m, nil
}

// advance moves to the next item and dispatches a prefetch when the
// controller asks for one.
func (m Model) advance() tea.Cmd {
	moved, req := m.controller.Advance()
	if moved {
		m.activateCurrent()
	}
	if req != nil {
		return fetchPage(m.svc, *req)
	}
	return nil
}

// retreat moves to the previous item; a no-op at the top.
func (m Model) retreat() {
	if m.controller.Retreat() {
		m.activateCurrent()
	}
}

// jumpTo moves directly to an indicator dot. Out-of-range dots are
// ignored.
func (m Model) jumpTo(index int) {
	if index >= m.cfg.Feed.IndicatorLimit {
		return
	}
	if err := m.controller.JumpTo(index); err != nil {
		return
	}
	m.activateCurrent()
}

// refresh starts a fresh session. Old items, cursor, transports, and any
// lingering notice are discarded together; an in-flight fetch from the
// old generation will be ignored on arrival. The receiver is a value, so
// the updated copy must be returned.
func (m Model) refresh() (Model, tea.Cmd) {
	m.sync.Reset()
	m.picker.Cancel()
	m.notice = ""
	req := m.controller.LoadInitial()
	return m, fetchPage(m.svc, req)
}

// retryPage retries a failed pagination fetch against the same cursor.
func (m Model) retryPage() tea.Cmd {
	req := m.controller.RetryPage()
	if req == nil {
		return nil
	}
	return fetchPage(m.svc, *req)
}

// react applies the optimistic mutation and dispatches the submission.
// The receiver is a value, so the updated copy must be returned.
func (m Model) react(itemID, emoji string) (Model, tea.Cmd) {
	item := m.controller.Session().ItemByID(itemID)
	if item == nil {
		// The picker's target did not survive a refresh; drop the pick.
		return m, nil
	}
	sub, err := m.reconciler.React(item, emoji)
	if err != nil {
		m.notice = fmt.Sprintf("reaction not sent: %v", err)
		return m, nil
	}
	return m, submitReaction(m.svc, sub)
}
