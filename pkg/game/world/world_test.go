package world

import (
	"testing"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Stability != 78 {
		t.Errorf("Stability = %d, want 78", s.Stability)
	}
	if s.Mode != ModeTerminal {
		t.Errorf("Mode = %v, want ModeTerminal", s.Mode)
	}
	if s.ConnectedUnit != "" {
		t.Errorf("ConnectedUnit = %q, want empty", s.ConnectedUnit)
	}
	if s.PowerUnstable || s.DoorUnlocked {
		t.Error("power/door flags set on fresh state")
	}
	if s.Explore.Player != (Position{X: 2, Y: 2}) {
		t.Errorf("Player = %v, want (2,2)", s.Explore.Player)
	}
	if s.Explore.Inventory.Size() != 0 {
		t.Error("inventory not empty on fresh state")
	}
}

func TestApplyPatchCosts(t *testing.T) {
	s := NewState()
	if got := s.ApplyPatch('A'); got != 76 {
		t.Errorf("after patch A: stability = %d, want 76", got)
	}
	if got := s.ApplyPatch('B'); got != 74 {
		t.Errorf("after patch B: stability = %d, want 74", got)
	}
	if got := s.ApplyPatch('C'); got != 69 {
		t.Errorf("after patch C: stability = %d, want 69", got)
	}
}

func TestApplyPatchFloorsAtZero(t *testing.T) {
	s := NewState()
	s.Stability = 3
	if got := s.ApplyPatch('C'); got != 0 {
		t.Errorf("stability = %d, want 0 (floored)", got)
	}
	if got := s.ApplyPatch('A'); got != 0 {
		t.Errorf("stability after further patch = %d, want 0", got)
	}
}

func TestConnectRecordsUnit(t *testing.T) {
	s := NewState()
	s.Connect("unit_12")
	if s.ConnectedUnit != "unit_12" {
		t.Errorf("ConnectedUnit = %q, want unit_12", s.ConnectedUnit)
	}
	// Idempotent
	s.Connect("unit_12")
	if s.ConnectedUnit != "unit_12" {
		t.Errorf("ConnectedUnit after repeat = %q, want unit_12", s.ConnectedUnit)
	}
}

func TestTryMoveDeltas(t *testing.T) {
	e := NewExploreState()

	moved, pos := e.TryMove(North)
	if !moved || pos != (Position{X: 2, Y: 3}) {
		t.Errorf("north from (2,2): moved=%v pos=%v, want true (2,3)", moved, pos)
	}
	moved, pos = e.TryMove(South)
	if !moved || pos != (Position{X: 2, Y: 2}) {
		t.Errorf("south back: moved=%v pos=%v, want true (2,2)", moved, pos)
	}
	moved, pos = e.TryMove(East)
	if !moved || pos != (Position{X: 3, Y: 2}) {
		t.Errorf("east: moved=%v pos=%v, want true (3,2)", moved, pos)
	}
	moved, pos = e.TryMove(West)
	if !moved || pos != (Position{X: 2, Y: 2}) {
		t.Errorf("west back: moved=%v pos=%v, want true (2,2)", moved, pos)
	}
}

func TestTryMoveBlockedAtBounds(t *testing.T) {
	e := NewExploreState()
	e.Player = Position{X: 0, Y: 4}

	if moved, _ := e.TryMove(North); moved {
		t.Error("move north from y=4 succeeded, want blocked")
	}
	if moved, _ := e.TryMove(West); moved {
		t.Error("move west from x=0 succeeded, want blocked")
	}
	if e.Player != (Position{X: 0, Y: 4}) {
		t.Errorf("position changed on blocked move: %v", e.Player)
	}
}

func TestTryMoveInvalidDirection(t *testing.T) {
	e := NewExploreState()
	if moved, pos := e.TryMove(ParseDirection("up")); moved || pos != (Position{X: 2, Y: 2}) {
		t.Errorf("invalid direction: moved=%v pos=%v, want false (2,2)", moved, pos)
	}
}

func TestParseDirection(t *testing.T) {
	if ParseDirection("n") != North || ParseDirection("s") != South ||
		ParseDirection("e") != East || ParseDirection("w") != West {
		t.Error("single-letter tokens did not map to their directions")
	}
	if ParseDirection("north") != DirectionInvalid {
		t.Error("long-form token should be invalid")
	}
	if ParseDirection("") != DirectionInvalid {
		t.Error("empty token should be invalid")
	}
}

func TestIsNearChebyshev(t *testing.T) {
	e := NewExploreState()
	e.Player = Position{X: 2, Y: 2}

	near := []Position{{2, 2}, {1, 1}, {3, 3}, {2, 3}, {1, 2}}
	for _, p := range near {
		if !e.IsNear(p) {
			t.Errorf("IsNear(%v) = false, want true", p)
		}
	}

	far := []Position{{0, 2}, {2, 0}, {4, 4}, {0, 0}}
	for _, p := range far {
		if e.IsNear(p) {
			t.Errorf("IsNear(%v) = true, want false", p)
		}
	}
}

func TestFuseLifecycle(t *testing.T) {
	s := NewState()
	e := s.Explore

	e.MarkLockerInspected()
	if !e.LockerInspected {
		t.Error("LockerInspected not set")
	}

	e.TakeFuse()
	if !e.FuseTaken {
		t.Error("FuseTaken not set")
	}
	if !e.Inventory.Has(FuseItem) {
		t.Error("fuse not in inventory after take")
	}

	s.PowerUnstable = true
	s.InstallFuse()
	if s.PowerUnstable {
		t.Error("PowerUnstable still set after install")
	}
	if !s.DoorUnlocked {
		t.Error("DoorUnlocked not set after install")
	}
	if !e.FuseInstalled {
		t.Error("FuseInstalled not set after install")
	}
	if e.Inventory.Has(FuseItem) {
		t.Error("fuse still in inventory after install")
	}
}
