package world

// Direction represents a cardinal direction on the room grid
type Direction int

// Direction constants
const (
	DirectionInvalid Direction = iota
	North
	South
	East
	West
)

// ParseDirection maps a lowercase direction token (n/s/e/w) to a Direction.
// Anything else yields DirectionInvalid.
func ParseDirection(token string) Direction {
	switch token {
	case "n":
		return North
	case "s":
		return South
	case "e":
		return East
	case "w":
		return West
	default:
		return DirectionInvalid
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the x and y offsets for this direction.
// North increases y, east increases x.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
