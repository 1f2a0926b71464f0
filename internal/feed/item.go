// Package feed owns the feed session state machine: the ordered item list,
// cursor pagination, the active index, and the generation counter that
// detects stale asynchronous results after a refresh.
//
// The Controller is the only component that mutates the item list's length
// or ordering. Other components (playback, engagement) receive references
// to individual items and mutate only their own slice of state.
package feed

// VideoItem is a single entry in the feed. Items are created when a feed
// page arrives and are immutable except for their reaction sets, which the
// engagement reconciler mutates. Items are never evicted individually;
// they live until the session is superseded, so indices never shift under
// the user.
type VideoItem struct {
	// ID is an opaque stable identifier, unique within a session.
	ID string

	// MediaURL locates the playable stream. It may need an access token
	// appended as a query parameter before a driver loads it; that happens
	// at hand-off, outside this package.
	MediaURL string

	// DurationHintMs is an optional server-supplied duration used before
	// the media reports metadata. Zero means no hint.
	DurationHintMs int64

	// Display metadata, opaque to the engine.
	AuthorID    string
	WaveID      string
	WaveTitle   string
	CaptionHTML string

	// Optional back-reference to a reply thread.
	ConversationID    string
	ConversationCount int

	// reactions maps emoji to the set of user ids who reacted.
	// Lazily allocated on first reaction.
	reactions map[string]map[string]struct{}
}

// AddReaction records that userID reacted with emoji. It reports whether
// the set changed; adding an already-present user is a no-op, which makes
// optimistic re-application of the same reaction safe.
func (v *VideoItem) AddReaction(emoji, userID string) bool {
	if v.reactions == nil {
		v.reactions = make(map[string]map[string]struct{})
	}
	set, ok := v.reactions[emoji]
	if !ok {
		set = make(map[string]struct{})
		v.reactions[emoji] = set
	}
	if _, present := set[userID]; present {
		return false
	}
	set[userID] = struct{}{}
	return true
}

// SetReactions replaces the item's reaction sets from server data.
// Used when a page arrives; the server's view wins on load.
func (v *VideoItem) SetReactions(byEmoji map[string][]string) {
	if len(byEmoji) == 0 {
		v.reactions = nil
		return
	}
	v.reactions = make(map[string]map[string]struct{}, len(byEmoji))
	for emoji, users := range byEmoji {
		set := make(map[string]struct{}, len(users))
		for _, u := range users {
			set[u] = struct{}{}
		}
		v.reactions[emoji] = set
	}
}

// HasReacted reports whether userID has reacted with emoji.
func (v *VideoItem) HasReacted(emoji, userID string) bool {
	set, ok := v.reactions[emoji]
	if !ok {
		return false
	}
	_, present := set[userID]
	return present
}

// ReactionCount returns how many users reacted with emoji.
func (v *VideoItem) ReactionCount(emoji string) int {
	return len(v.reactions[emoji])
}

// ReactionEmojis returns the emojis with at least one reaction, in no
// particular order.
func (v *VideoItem) ReactionEmojis() []string {
	if len(v.reactions) == 0 {
		return nil
	}
	emojis := make([]string, 0, len(v.reactions))
	for emoji := range v.reactions {
		emojis = append(emojis, emoji)
	}
	return emojis
}

// ReactionUsers returns the ids of users who reacted with emoji, in no
// particular order.
func (v *VideoItem) ReactionUsers(emoji string) []string {
	set, ok := v.reactions[emoji]
	if !ok {
		return nil
	}
	users := make([]string, 0, len(set))
	for u := range set {
		users = append(users, u)
	}
	return users
}

// TotalReactions returns the number of (user, emoji) reaction pairs.
func (v *VideoItem) TotalReactions() int {
	total := 0
	for _, set := range v.reactions {
		total += len(set)
	}
	return total
}
