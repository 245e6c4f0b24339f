package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Grid bounds: positions are constrained to [0,GridMax] on both axes
const (
	GridMin = 0
	GridMax = 4
)

// FuseItem is the only collectible item in the observation room
const FuseItem = "fuse"

// Position is a coordinate on the room grid
type Position struct {
	X int
	Y int
}

// InRange returns true if the position is within the room grid
func (p Position) InRange() bool {
	return p.X >= GridMin && p.X <= GridMax && p.Y >= GridMin && p.Y <= GridMax
}

// ExploreState is the on-foot sub-state of a session
type ExploreState struct {
	Player Position

	LockerInspected bool
	FuseTaken       bool
	FuseInstalled   bool

	Inventory mapset.Set[string]
}

// NewExploreState creates the explore sub-state with the player at the
// center of the room and an empty inventory.
func NewExploreState() *ExploreState {
	return &ExploreState{
		Player:    Position{X: 2, Y: 2},
		Inventory: mapset.New[string](),
	}
}

// TryMove attempts to move the player one step. It fails, leaving the player
// in place, if the direction is invalid or the step would leave the grid.
func (e *ExploreState) TryMove(d Direction) (bool, Position) {
	if !d.IsValid() {
		return false, e.Player
	}

	dx, dy := d.Delta()
	next := Position{X: e.Player.X + dx, Y: e.Player.Y + dy}

	if !next.InRange() {
		return false, e.Player
	}

	e.Player = next
	return true, e.Player
}

// IsNear returns true if the target is within interaction range of the
// player: Chebyshev distance at most one.
func (e *ExploreState) IsNear(target Position) bool {
	return abs(target.X-e.Player.X) <= 1 && abs(target.Y-e.Player.Y) <= 1
}

// MarkLockerInspected records that the locker has been opened
func (e *ExploreState) MarkLockerInspected() {
	e.LockerInspected = true
}

// TakeFuse moves the fuse into the inventory
func (e *ExploreState) TakeFuse() {
	e.FuseTaken = true
	e.Inventory.Put(FuseItem)
}

// MarkFuseInstalled seats the fuse in the panel, removing it from the inventory
func (e *ExploreState) MarkFuseInstalled() {
	e.FuseInstalled = true
	e.Inventory.Remove(FuseItem)
}

// Items returns the inventory contents
func (e *ExploreState) Items() []string {
	var items []string
	e.Inventory.Each(func(item string) {
		items = append(items, item)
	})
	return items
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
