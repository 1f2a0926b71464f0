package feed

// Session holds one feed session's state. A session is created on mount or
// explicit refresh and superseded wholesale (never mutated in place) on the
// next refresh, so two orderings are never mixed.
type Session struct {
	// Generation tags the session so asynchronous results dispatched under
	// an earlier session can be recognized and discarded.
	Generation uint64

	// Seed is sent with every page request of this session so the server
	// keeps tie-break ordering stable across pages.
	Seed int64

	// Items is the ordered item list, append-only within the session.
	// The server is the sole ordering authority; the client never re-sorts.
	Items []*VideoItem

	// Cursor is the opaque continuation token for the next page.
	// Empty means "start" before the first fetch, or "exhausted" once
	// HasMore is false.
	Cursor string

	// HasMore reports whether the server has further pages. Once false,
	// no fetches are attempted until the session is superseded.
	HasMore bool

	// ActiveIndex is the currently active item. Invariant: within
	// [0, len(Items)) whenever Items is non-empty.
	ActiveIndex int
}

// Len returns the number of loaded items.
func (s *Session) Len() int {
	return len(s.Items)
}

// ActiveItem returns the active item, or nil while the session is empty.
func (s *Session) ActiveItem() *VideoItem {
	if len(s.Items) == 0 {
		return nil
	}
	return s.Items[s.ActiveIndex]
}

// ItemByID returns the item with the given id, or nil if not loaded.
func (s *Session) ItemByID(id string) *VideoItem {
	for _, item := range s.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Page is one server response worth of items.
type Page struct {
	Items      []*VideoItem
	HasMore    bool
	NextCursor string
}

// FetchRequest carries everything needed to request one page. The
// generation tag lets the result be matched back to the session that
// dispatched it.
type FetchRequest struct {
	Limit      int
	Seed       int64
	Cursor     string
	Generation uint64
}
