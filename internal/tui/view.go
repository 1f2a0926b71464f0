package tui

import (
	"fmt"
	"strings"

	"github.com/driftwave/ripple/internal/feed"
	"github.com/driftwave/ripple/internal/gesture"
	"github.com/driftwave/ripple/internal/playback"
	"github.com/driftwave/ripple/internal/tui/styles"
)

const progressBarWidth = 40

// View renders the feed: one droplet at a time, with the position
// indicator, caption, and transport controls around it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  starting..."
	}

	switch m.controller.Phase() {
	case feed.PhaseInitialLoading:
		return fmt.Sprintf("\n  %s loading your feed...\n", m.spin.View())

	case feed.PhaseInitialError:
		return styles.ErrorPanel.Render(
			"could not load the feed\n\n"+fmt.Sprintf("%v", m.controller.InitialErr()),
		) + "\n" + styles.Muted.Render("  press R to retry, q to quit") + "\n"

	case feed.PhaseEmpty:
		return "\n  " + styles.Subtitle.Render("nothing in the feed right now") + "\n" +
			styles.Muted.Render("  press R to refresh, q to quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderPlayer())
	b.WriteString("\n")
	b.WriteString(m.renderCaption())
	b.WriteString("\n")
	b.WriteString(m.renderIndicator())

	if m.pull.Phase() != gesture.PullIdle {
		b.WriteString("\n")
		b.WriteString(m.renderPull())
	}
	if m.controller.Loading() {
		b.WriteString("\n")
		b.WriteString(m.spin.View() + styles.Muted.Render(" loading more..."))
	}
	if m.controller.PageErr() != nil {
		b.WriteString("\n")
		b.WriteString(styles.Error.Render("could not load more droplets") +
			styles.Muted.Render("  press p to retry"))
	}
	if m.picker.IsOpen() {
		b.WriteString("\n")
		b.WriteString(m.renderPicker())
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(styles.Notice.Render(m.notice))
	}
	if m.cfg.TUI.ShowHelpBar {
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
	}
	return b.String()
}

func (m Model) renderHeader() string {
	item := m.controller.ActiveItem()
	title := fmt.Sprintf("ripple  %s", item.WaveTitle)
	position := styles.Subtitle.Render(
		fmt.Sprintf("  %d of %d  by %s", m.controller.ActiveIndex()+1, len(m.controller.Items()), item.AuthorID),
	)
	return styles.Header.Render(styles.Title.Render(title) + position)
}

func (m Model) renderPlayer() string {
	item := m.controller.ActiveItem()
	t := m.sync.Get(item.ID)
	if t == nil {
		return styles.PlayerBox.Render(m.spin.View() + " preparing...")
	}

	if t.State() == playback.StateErrored {
		return styles.PlayerErrorBox.Render(
			"this droplet failed to play\n" + styles.Muted.Render("swipe on to the next one"),
		)
	}

	var lines []string
	lines = append(lines, m.renderProgress(t))

	if t.ControlsVisible(m.clock()) {
		var status string
		switch t.State() {
		case playback.StateLoading, playback.StateIdle:
			status = m.spin.View() + " loading"
		case playback.StatePlaying:
			status = styles.Secondary.Render("▶ playing")
		case playback.StatePaused:
			if t.PolicyBlocked() {
				status = styles.Warning.Render("▶ press space to play")
			} else {
				status = styles.Muted.Render("Ⅱ paused")
			}
		default:
			status = styles.Muted.Render(t.State().String())
		}

		audio := styles.Muted.Render("sound on")
		if t.Muted() {
			audio = styles.Muted.Render("muted")
		}
		lines = append(lines, status+"   "+audio)
	}

	return styles.PlayerBox.Render(strings.Join(lines, "\n"))
}

func (m Model) renderProgress(t *playback.Transport) string {
	dur := t.DurationMs()
	pos := t.PositionMs()
	if pos > dur {
		pos = dur
	}
	filled := 0
	if dur > 0 {
		filled = int(int64(progressBarWidth) * pos / dur)
	}
	bar := styles.ProgressFilled.Render(strings.Repeat("━", filled)) +
		styles.ProgressEmpty.Render(strings.Repeat("─", progressBarWidth-filled))
	return fmt.Sprintf("%s %s", bar, styles.Muted.Render(formatMs(pos)+"/"+formatMs(dur)))
}

func (m Model) renderCaption() string {
	item := m.controller.ActiveItem()
	caption := stripTags(item.CaptionHTML)

	var parts []string
	if caption != "" {
		parts = append(parts, styles.Caption.Render(caption))
	}
	if reactions := m.renderReactions(item); reactions != "" {
		parts = append(parts, reactions)
	}
	if item.ConversationCount > 0 {
		parts = append(parts, styles.Muted.Render(fmt.Sprintf("%d replies", item.ConversationCount)))
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderReactions(item *feed.VideoItem) string {
	emojis := item.ReactionEmojis()
	if len(emojis) == 0 {
		return ""
	}
	parts := make([]string, 0, len(emojis))
	for _, emoji := range emojis {
		parts = append(parts, fmt.Sprintf("%s %d", emoji, item.ReactionCount(emoji)))
	}
	return styles.Muted.Render(strings.Join(parts, "  "))
}

// renderIndicator draws the first IndicatorLimit items as dots; anything
// beyond collapses to a count.
func (m Model) renderIndicator() string {
	total := len(m.controller.Items())
	active := m.controller.ActiveIndex()
	limit := m.cfg.Feed.IndicatorLimit
	shown := total
	if shown > limit {
		shown = limit
	}

	var b strings.Builder
	for i := 0; i < shown; i++ {
		if i == active {
			b.WriteString(styles.DotActive.Render("●"))
		} else {
			b.WriteString(styles.DotInactive.Render("○"))
		}
		b.WriteString(" ")
	}
	if total > limit {
		b.WriteString(styles.DotOverflow.Render(fmt.Sprintf("+%d", total-limit)))
	}
	return b.String()
}

func (m Model) renderPull() string {
	width := int(m.pull.Progress() * progressBarWidth)
	bar := strings.Repeat("▾", width)
	label := "pull to refresh"
	if m.pull.Phase() == gesture.PullArmed {
		label = "release to refresh"
	}
	return styles.PullBar.Render(bar) + " " + styles.Muted.Render(label)
}

func (m Model) renderPicker() string {
	options := m.picker.Options()
	parts := make([]string, 0, len(options))
	for i, emoji := range options {
		if i == m.picker.Cursor() {
			parts = append(parts, styles.PickerSelected.Render(emoji))
		} else {
			parts = append(parts, styles.PickerOption.Render(emoji))
		}
	}
	return styles.PickerBox.Render(
		styles.Muted.Render("react: ") + strings.Join(parts, "") +
			styles.Muted.Render("  enter to send, esc to cancel"),
	)
}

func (m Model) renderHelp() string {
	if !m.showHelp {
		return styles.HelpBar.Render("? help  q quit")
	}
	keys := [][2]string{
		{"j/↓", "next"},
		{"k/↑", "previous"},
		{"space", "play/pause"},
		{"m", "mute"},
		{"r", "react"},
		{"1-9,0", "jump"},
		{"R", "refresh"},
		{"?", "close help"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, styles.HelpKey.Render(k[0])+" "+k[1])
	}
	return styles.HelpBar.Render(strings.Join(parts, "  "))
}

// formatMs renders milliseconds as m:ss.
func formatMs(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// stripTags removes markup from server captions for terminal display.
func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
