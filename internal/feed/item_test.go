package feed

import "testing"

func TestAddReaction_Idempotent(t *testing.T) {
	item := &VideoItem{ID: "item-3"}

	if !item.AddReaction("🔥", "user-1") {
		t.Error("first reaction should report a change")
	}
	if item.AddReaction("🔥", "user-1") {
		t.Error("repeated reaction should be a no-op")
	}
	if got := item.ReactionCount("🔥"); got != 1 {
		t.Errorf("ReactionCount = %d, want 1", got)
	}
}

func TestAddReaction_DistinctUsersAndEmojis(t *testing.T) {
	item := &VideoItem{ID: "item-1"}

	item.AddReaction("🔥", "user-1")
	item.AddReaction("🔥", "user-2")
	item.AddReaction("🌊", "user-1")

	if got := item.ReactionCount("🔥"); got != 2 {
		t.Errorf("ReactionCount(🔥) = %d, want 2", got)
	}
	if got := item.ReactionCount("🌊"); got != 1 {
		t.Errorf("ReactionCount(🌊) = %d, want 1", got)
	}
	if got := item.TotalReactions(); got != 3 {
		t.Errorf("TotalReactions = %d, want 3", got)
	}
}

func TestHasReacted(t *testing.T) {
	item := &VideoItem{ID: "item-1"}
	item.AddReaction("🔥", "user-1")

	if !item.HasReacted("🔥", "user-1") {
		t.Error("HasReacted should be true for recorded reaction")
	}
	if item.HasReacted("🔥", "user-2") {
		t.Error("HasReacted should be false for other users")
	}
	if item.HasReacted("🌊", "user-1") {
		t.Error("HasReacted should be false for other emojis")
	}
}

func TestSetReactions_ReplacesServerState(t *testing.T) {
	item := &VideoItem{ID: "item-1"}
	item.AddReaction("🔥", "local-user")

	item.SetReactions(map[string][]string{
		"🌊": {"user-1", "user-2"},
	})

	if item.HasReacted("🔥", "local-user") {
		t.Error("server state should replace local reactions on load")
	}
	if got := item.ReactionCount("🌊"); got != 2 {
		t.Errorf("ReactionCount(🌊) = %d, want 2", got)
	}

	// Optimistic mutation on top of server state stays idempotent.
	if item.AddReaction("🌊", "user-1") {
		t.Error("re-adding a server-recorded user should be a no-op")
	}
}

func TestReactionEmojis(t *testing.T) {
	item := &VideoItem{ID: "item-1"}
	if got := item.ReactionEmojis(); got != nil {
		t.Errorf("ReactionEmojis on fresh item = %v, want nil", got)
	}

	item.AddReaction("🔥", "user-1")
	item.AddReaction("🌊", "user-1")
	if got := len(item.ReactionEmojis()); got != 2 {
		t.Errorf("len(ReactionEmojis) = %d, want 2", got)
	}
}
