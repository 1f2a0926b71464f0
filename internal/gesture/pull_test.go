package gesture

import "testing"

func TestPullTracker_ArmAndFire(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(100, 0)
	if tr.Phase() != PullDragging {
		t.Fatalf("Phase = %v, want dragging", tr.Phase())
	}

	// Raw drag of 140px damps to 70px, past the 60px threshold.
	dist := tr.Update(240)
	if dist != 70 {
		t.Errorf("Update = %v, want 70", dist)
	}
	if tr.Phase() != PullArmed {
		t.Errorf("Phase = %v, want armed", tr.Phase())
	}

	if !tr.Release() {
		t.Error("Release should fire after arming")
	}
	if tr.Phase() != PullIdle {
		t.Errorf("Phase after release = %v, want idle", tr.Phase())
	}
}

func TestPullTracker_ReleaseBelowThresholdCancels(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(100, 0)
	// Raw drag of 100px damps to 50px, under the threshold.
	if dist := tr.Update(200); dist != 50 {
		t.Errorf("Update = %v, want 50", dist)
	}
	if tr.Phase() != PullDragging {
		t.Errorf("Phase = %v, want dragging", tr.Phase())
	}

	if tr.Release() {
		t.Error("Release below threshold must not fire")
	}
}

func TestPullTracker_IgnoredWhenScrolled(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(100, 120)
	if tr.Phase() != PullIdle {
		t.Fatalf("Phase = %v, want idle when scroll offset nonzero", tr.Phase())
	}
	if dist := tr.Update(400); dist != 0 {
		t.Errorf("Update while idle = %v, want 0", dist)
	}
	if tr.Release() {
		t.Error("Release while idle must not fire")
	}
}

func TestPullTracker_DistanceCapped(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(0, 0)
	// Raw drag of 400px damps to 200px, capped at threshold+20 = 80px.
	if dist := tr.Update(400); dist != 80 {
		t.Errorf("Update = %v, want capped 80", dist)
	}
}

func TestPullTracker_UpwardDragClampsToZero(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(100, 0)
	if dist := tr.Update(40); dist != 0 {
		t.Errorf("Update = %v, want 0 for upward drag", dist)
	}
	if tr.Phase() != PullDragging {
		t.Errorf("Phase = %v, want dragging", tr.Phase())
	}
}

func TestPullTracker_DisarmsWhenDraggedBack(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(0, 0)
	tr.Update(140) // 70px damped, armed
	if tr.Phase() != PullArmed {
		t.Fatalf("Phase = %v, want armed", tr.Phase())
	}

	tr.Update(80) // 40px damped, back under threshold
	if tr.Phase() != PullDragging {
		t.Errorf("Phase = %v, want dragging after drag-back", tr.Phase())
	}
	if tr.Release() {
		t.Error("Release after drag-back must not fire")
	}
}

func TestPullTracker_Cancel(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(0, 0)
	tr.Update(140)
	tr.Cancel()

	if tr.Phase() != PullIdle {
		t.Errorf("Phase after cancel = %v, want idle", tr.Phase())
	}
	if tr.Release() {
		t.Error("Release after cancel must not fire")
	}
}

func TestPullTracker_Progress(t *testing.T) {
	tr := NewPullTracker(60)

	tr.Begin(0, 0)
	tr.Update(60) // 30px damped
	if got := tr.Progress(); got != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got)
	}

	tr.Update(400) // capped at 80px, progress clamps to 1
	if got := tr.Progress(); got != 1 {
		t.Errorf("Progress = %v, want 1", got)
	}
}
