// Package room is the static catalog of interactable objects in the
// observation room, plus the minimap renderer. Pure data and pure functions;
// the catalog is built once and never mutated.
package room

import (
	"strings"

	"observernode/pkg/game/world"
)

// EmptyMarker is the minimap marker for a cell with no object
const EmptyMarker = '.'

// PlayerMarker is the minimap marker for the player's cell
const PlayerMarker = 'X'

// Object represents a fixed interactable in the observation room
type Object struct {
	ID          string
	Label       string
	Description string
	Position    world.Position
	Marker      rune
}

// catalog holds every object in the room, in minimap scan order
var catalog = []*Object{
	{
		ID:          "panel",
		Label:       "The wall panel",
		Description: "A wall-mounted power panel. Its cover hangs open on one hinge.",
		Position:    world.Position{X: 2, Y: 4},
		Marker:      'P',
	},
	{
		ID:          "locker",
		Label:       "The supply locker",
		Description: "A dented supply locker. The latch gives with a squeal.",
		Position:    world.Position{X: 1, Y: 1},
		Marker:      'L',
	},
	{
		ID:          "door",
		Label:       "The bulkhead door",
		Description: "A heavy bulkhead door, the only way out of the room.",
		Position:    world.Position{X: 4, Y: 2},
		Marker:      'D',
	},
}

// Lookup finds an object by id, case-insensitively. Returns nil if the room
// has nothing by that name.
func Lookup(id string) *Object {
	id = strings.ToLower(id)
	for _, obj := range catalog {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}

// All returns every object in the catalog
func All() []*Object {
	return catalog
}

// MarkerAt returns the minimap marker for a grid position: the first object
// occupying it, or EmptyMarker.
func MarkerAt(pos world.Position) rune {
	for _, obj := range catalog {
		if obj.Position == pos {
			return obj.Marker
		}
	}
	return EmptyMarker
}

// Minimap renders the room grid with the player at the given position. Rows
// run top to bottom from y=4 to y=0, columns left to right from x=0 to x=4.
// Rows are joined by newlines with no trailing newline.
func Minimap(player world.Position) string {
	var sb strings.Builder

	for y := world.GridMax; y >= world.GridMin; y-- {
		if y < world.GridMax {
			sb.WriteByte('\n')
		}
		for x := world.GridMin; x <= world.GridMax; x++ {
			pos := world.Position{X: x, Y: y}
			if pos == player {
				sb.WriteRune(PlayerMarker)
			} else {
				sb.WriteRune(MarkerAt(pos))
			}
		}
	}

	return sb.String()
}
