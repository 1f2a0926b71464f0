package feed

import (
	"fmt"
	"testing"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/event"
)

func testController() *Controller {
	c := NewController(config.Default().Feed, nil, nil)
	c.seedFn = func() int64 { return 42 }
	return c
}

func makeItems(n int, prefix string) []*VideoItem {
	items := make([]*VideoItem, n)
	for i := range items {
		items[i] = &VideoItem{
			ID:       fmt.Sprintf("%s-%d", prefix, i),
			MediaURL: fmt.Sprintf("https://cdn.example.com/%s-%d.m3u8", prefix, i),
		}
	}
	return items
}

func TestLoadInitial_ResetsSession(t *testing.T) {
	c := testController()

	req := c.LoadInitial()

	if req.Limit != 10 {
		t.Errorf("Limit = %d, want 10", req.Limit)
	}
	if req.Seed != 42 {
		t.Errorf("Seed = %d, want 42", req.Seed)
	}
	if req.Cursor != "" {
		t.Errorf("Cursor = %q, want empty for first page", req.Cursor)
	}
	if req.Generation != 1 {
		t.Errorf("Generation = %d, want 1", req.Generation)
	}
	if c.Phase() != PhaseInitialLoading {
		t.Errorf("Phase = %v, want initial_loading", c.Phase())
	}
	if !c.Loading() {
		t.Error("Loading should be true after LoadInitial")
	}
}

func TestApplyPage_Appends(t *testing.T) {
	c := testController()
	req := c.LoadInitial()

	applied := c.ApplyPage(req.Generation, Page{
		Items:      makeItems(10, "a"),
		HasMore:    true,
		NextCursor: "c1",
	})

	if !applied {
		t.Fatal("page for current generation should apply")
	}
	if c.Session().Len() != 10 {
		t.Errorf("Len = %d, want 10", c.Session().Len())
	}
	if c.Session().Cursor != "c1" {
		t.Errorf("Cursor = %q, want %q", c.Session().Cursor, "c1")
	}
	if c.Phase() != PhaseReady {
		t.Errorf("Phase = %v, want ready", c.Phase())
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", c.ActiveIndex())
	}
}

func TestAdvance_PrefetchesNearEnd(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: makeItems(10, "a"), HasMore: true, NextCursor: "c1"})

	// Swipe up 9 times. Prefetch should trigger once the active index
	// reaches 7 (within 3 of the end of 10 items).
	var prefetch *FetchRequest
	for i := 0; i < 9; i++ {
		moved, req := c.Advance()
		if !moved {
			t.Fatalf("advance %d should move", i)
		}
		if req != nil {
			if prefetch != nil {
				t.Fatal("prefetch dispatched twice while one was in flight")
			}
			prefetch = req
			if c.ActiveIndex() != 7 {
				t.Errorf("prefetch at index %d, want 7", c.ActiveIndex())
			}
		}
	}

	if c.ActiveIndex() != 9 {
		t.Errorf("ActiveIndex = %d, want 9", c.ActiveIndex())
	}
	if prefetch == nil {
		t.Fatal("expected a prefetch request")
	}
	if prefetch.Cursor != "c1" {
		t.Errorf("prefetch Cursor = %q, want %q", prefetch.Cursor, "c1")
	}

	// Second page arrives; the session grows to 20 items.
	c.ApplyPage(prefetch.Generation, Page{Items: makeItems(10, "b"), HasMore: false, NextCursor: ""})
	if c.Session().Len() != 20 {
		t.Errorf("Len = %d, want 20", c.Session().Len())
	}
}

func TestAdvance_AtEndWithoutMorePages(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: makeItems(2, "a"), HasMore: false})

	c.Advance()
	moved, fetch := c.Advance()

	if moved {
		t.Error("advance at last item should not move")
	}
	if fetch != nil {
		t.Error("no fetch should be dispatched when hasMore is false")
	}
	if c.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex = %d, want 1", c.ActiveIndex())
	}
}

func TestRetreat_NoOpAtZero(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: makeItems(3, "a"), HasMore: false})

	if c.Retreat() {
		t.Error("retreat at index 0 should be a no-op")
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", c.ActiveIndex())
	}

	c.Advance()
	if !c.Retreat() {
		t.Error("retreat from index 1 should move")
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", c.ActiveIndex())
	}
}

func TestJumpTo_Bounds(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: makeItems(5, "a"), HasMore: false})

	if err := c.JumpTo(4); err != nil {
		t.Errorf("JumpTo(4): %v", err)
	}
	if c.ActiveIndex() != 4 {
		t.Errorf("ActiveIndex = %d, want 4", c.ActiveIndex())
	}

	if err := c.JumpTo(5); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("JumpTo(5) = %v, want ErrIndexOutOfRange", err)
	}
	if err := c.JumpTo(-1); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("JumpTo(-1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestStaleGeneration_Discarded(t *testing.T) {
	c := testController()
	first := c.LoadInitial()

	// Refresh before the first page lands.
	second := c.LoadInitial()
	if second.Generation != first.Generation+1 {
		t.Fatalf("Generation = %d, want %d", second.Generation, first.Generation+1)
	}

	// The stale response must be discarded silently.
	if c.ApplyPage(first.Generation, Page{Items: makeItems(10, "stale"), HasMore: true}) {
		t.Error("stale page should not apply")
	}
	if c.Session().Len() != 0 {
		t.Errorf("Len = %d, want 0 after discarding stale page", c.Session().Len())
	}

	// The fresh response applies normally.
	if !c.ApplyPage(second.Generation, Page{Items: makeItems(10, "fresh"), HasMore: true, NextCursor: "c1"}) {
		t.Error("fresh page should apply")
	}
	if got := c.Items()[0].ID; got != "fresh-0" {
		t.Errorf("first item = %q, want %q", got, "fresh-0")
	}
}

func TestFetchSerialization(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: makeItems(4, "a"), HasMore: true, NextCursor: "c1"})

	// Near the end already: first advance dispatches the fetch.
	_, first := c.Advance()
	if first == nil {
		t.Fatal("expected a prefetch request")
	}

	// While it is in flight, further advances must not dispatch another.
	_, second := c.Advance()
	if second != nil {
		t.Error("second fetch dispatched while one was outstanding")
	}
}

func TestInitialLoadFailure_BlanksSession(t *testing.T) {
	c := testController()
	req := c.LoadInitial()

	c.ApplyFetchError(req.Generation, errors.NewFeedError("fetch", errors.ErrFeedUnavailable))

	if c.Phase() != PhaseInitialError {
		t.Errorf("Phase = %v, want initial_error", c.Phase())
	}
	if c.InitialErr() == nil {
		t.Error("InitialErr should be set")
	}

	// Retry re-invokes LoadInitial with a fresh generation.
	retry := c.LoadInitial()
	if retry.Generation != req.Generation+1 {
		t.Errorf("retry Generation = %d, want %d", retry.Generation, req.Generation+1)
	}
	if c.Phase() != PhaseInitialLoading {
		t.Errorf("Phase = %v, want initial_loading", c.Phase())
	}
}

func TestPaginationFailure_KeepsItemsAndCursor(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: makeItems(10, "a"), HasMore: true, NextCursor: "c1"})

	c.JumpTo(9)
	_, fetch := c.Advance()
	if fetch == nil {
		t.Fatal("expected a prefetch request")
	}

	c.ApplyFetchError(fetch.Generation, errors.NewFeedError("fetch", errors.ErrFeedUnavailable))

	if c.Phase() != PhaseReady {
		t.Errorf("Phase = %v, want ready: loaded items stay visible", c.Phase())
	}
	if c.PageErr() == nil {
		t.Error("PageErr should be set")
	}
	if c.Session().Cursor != "c1" {
		t.Errorf("Cursor = %q, want unchanged %q", c.Session().Cursor, "c1")
	}

	// Retry uses the same cursor.
	retry := c.RetryPage()
	if retry == nil {
		t.Fatal("RetryPage should hand out a request")
	}
	if retry.Cursor != "c1" {
		t.Errorf("retry Cursor = %q, want %q", retry.Cursor, "c1")
	}
	if c.PageErr() != nil {
		t.Error("PageErr should clear on retry")
	}
}

func TestEmptyFeed(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: nil, HasMore: false})

	if c.Phase() != PhaseEmpty {
		t.Errorf("Phase = %v, want empty", c.Phase())
	}
	if moved, _ := c.Advance(); moved {
		t.Error("advance on empty session should be a no-op")
	}
	if c.Retreat() {
		t.Error("retreat on empty session should be a no-op")
	}
}

func TestDispose_DiscardsResults(t *testing.T) {
	c := testController()
	req := c.LoadInitial()
	c.Dispose()

	if c.ApplyPage(req.Generation, Page{Items: makeItems(10, "a"), HasMore: true}) {
		t.Error("disposed controller should discard pages")
	}
	if moved, _ := c.Advance(); moved {
		t.Error("disposed controller should not navigate")
	}
}

func TestController_PublishesEvents(t *testing.T) {
	bus := event.NewBus()
	c := NewController(config.Default().Feed, nil, bus)
	c.seedFn = func() int64 { return 42 }

	var types []string
	bus.SubscribeAll(func(e event.Event) {
		types = append(types, e.EventType())
	})

	req := c.LoadInitial()
	c.ApplyPage(req.Generation, Page{Items: makeItems(2, "a"), HasMore: false})
	c.Advance()

	want := []string{"session.reset", "session.page_appended", "session.active_changed"}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}
