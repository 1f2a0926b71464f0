// Package stubserver is the local development feed service. It serves the
// same endpoints the real service exposes, backed by a deterministic
// in-memory catalog, so the client can be exercised end to end without
// network access.
package stubserver

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/feed"
)

var waveTitles = []string{
	"Morning Glass",
	"Storm Chasers",
	"Reef Break Diaries",
	"City Surf",
	"Longboard Sessions",
	"Night Paddle",
}

var captions = []string{
	"<p>caught this one just after sunrise</p>",
	"<p>wait for the ending 🌊</p>",
	"<p>third attempt finally landed</p>",
	"<p>no board, no problem</p>",
	"<p>sound on for this one</p>",
	"<p>conditions were unreal today</p>",
}

// cursorState is what an issued continuation token resolves to. Tokens
// are opaque to clients; the pairing with the session seed means a cursor
// can't be replayed against a differently ordered session.
type cursorState struct {
	seed   int64
	offset int
}

// Catalog is the stub's droplet store. Content is generated once,
// deterministically, so ids and metadata are stable across restarts with
// the same item count. Ordering is deterministic per session seed.
//
// Unlike the client engine, the catalog is hit by concurrent HTTP
// handlers and locks accordingly.
type Catalog struct {
	mu      sync.RWMutex
	items   []*feed.VideoItem
	byID    map[string]*feed.VideoItem
	orders  map[int64][]int
	cursors map[string]cursorState
	// nextTokens memoizes issued continuation tokens per seed and offset,
	// so retrying a page returns the identical response.
	nextTokens map[int64]map[int]string
}

// NewCatalog generates a catalog of n droplets.
func NewCatalog(n int) *Catalog {
	// Fixed generator seed: the catalog's CONTENT never varies, only the
	// per-session ordering does.
	rng := rand.New(rand.NewPCG(0x5eed, 0xd1ce))

	c := &Catalog{
		items:      make([]*feed.VideoItem, 0, n),
		byID:       make(map[string]*feed.VideoItem, n),
		orders:     make(map[int64][]int),
		cursors:    make(map[string]cursorState),
		nextTokens: make(map[int64]map[int]string),
	}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("droplet-%04d", i+1)
		wave := i % len(waveTitles)
		item := &feed.VideoItem{
			ID:             id,
			MediaURL:       fmt.Sprintf("https://media.driftwave.local/%s/stream.m3u8", id),
			DurationHintMs: int64(6000 + rng.IntN(40)*1000),
			AuthorID:       fmt.Sprintf("author-%02d", rng.IntN(17)+1),
			WaveID:         fmt.Sprintf("wave-%02d", wave+1),
			WaveTitle:      waveTitles[wave],
			CaptionHTML:    captions[rng.IntN(len(captions))],
		}
		if rng.IntN(3) == 0 {
			item.ConversationID = fmt.Sprintf("conv-%04d", i+1)
			item.ConversationCount = rng.IntN(40) + 1
		}
		c.items = append(c.items, item)
		c.byID[id] = item
	}
	return c
}

// Len returns the number of droplets in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Page returns one page of the feed for the given session seed. An empty
// cursor starts from the beginning of that seed's ordering; otherwise the
// cursor must be one this catalog issued for the same seed.
func (c *Catalog) Page(seed int64, cursor string, limit int) ([]*feed.VideoItem, bool, string, error) {
	if limit <= 0 {
		return nil, false, "", errors.NewValidationError("limit", limit, "must be positive")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	offset := 0
	if cursor != "" {
		state, ok := c.cursors[cursor]
		if !ok || state.seed != seed {
			return nil, false, "", errors.NewNotFoundError("cursor", cursor)
		}
		offset = state.offset
	}

	order := c.orderLocked(seed)
	if offset >= len(order) {
		return nil, false, "", nil
	}

	end := offset + limit
	if end > len(order) {
		end = len(order)
	}
	page := make([]*feed.VideoItem, 0, end-offset)
	for _, idx := range order[offset:end] {
		page = append(page, c.items[idx])
	}

	hasMore := end < len(order)
	next := ""
	if hasMore {
		next = c.continuationLocked(seed, end)
	}
	return page, hasMore, next, nil
}

// React records a reaction on a droplet. It reports whether the set
// changed; re-reacting with the same triple is accepted and is a no-op.
func (c *Catalog) React(itemID, emoji, userID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.byID[itemID]
	if !ok {
		return false, errors.NewNotFoundError("droplet", itemID)
	}
	return item.AddReaction(emoji, userID), nil
}

// continuationLocked returns the continuation token for a seed and
// offset, minting one on first use. Tokens stay resolvable after they
// are served: a client that lost a response can retry the same cursor
// and get the same page and the same next token back.
func (c *Catalog) continuationLocked(seed int64, offset int) string {
	byOffset := c.nextTokens[seed]
	if byOffset == nil {
		byOffset = make(map[int]string)
		c.nextTokens[seed] = byOffset
	}
	if token, ok := byOffset[offset]; ok {
		return token
	}
	token := uuid.NewString()
	byOffset[offset] = token
	c.cursors[token] = cursorState{seed: seed, offset: offset}
	return token
}

// orderLocked returns the shuffled index order for a seed, computing and
// caching it on first use. Ties in ranking stay stable across pages of
// the same session because the whole ordering is fixed up front.
func (c *Catalog) orderLocked(seed int64) []int {
	if order, ok := c.orders[seed]; ok {
		return order
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	order := rng.Perm(len(c.items))
	c.orders[seed] = order
	return order
}
