// Package world holds the persistent state of one console session: the local
// node's status, the uplink, and the explore sub-state. It performs no I/O and
// no input validation; the command router validates before mutating.
package world

// Mode represents which command surface is active
type Mode int

// Modes
const (
	ModeTerminal Mode = iota
	ModeExplore
)

// Fixed identity of the local node
const (
	NodeID   = "observer_00"
	Identity = "UNDEFINED"
)

// InitialStability is the stability reading of a fresh session
const InitialStability = 78

// State is the complete world state for one session
type State struct {
	Stability     int
	ConnectedUnit string // empty until a successful connect
	Mode          Mode

	PowerUnstable bool
	DoorUnlocked  bool

	Explore *ExploreState
}

// NewState creates the state for a fresh session in terminal mode
func NewState() *State {
	return &State{
		Stability: InitialStability,
		Mode:      ModeTerminal,
		Explore:   NewExploreState(),
	}
}

// ApplyPatch deducts the stability cost of a patch option and returns the new
// stability. Option 'C' costs 5, options 'A' and 'B' cost 2. Stability floors
// at zero and is never restored.
func (s *State) ApplyPatch(option byte) int {
	cost := 2
	if option == 'C' {
		cost = 5
	}

	s.Stability -= cost
	if s.Stability < 0 {
		s.Stability = 0
	}

	return s.Stability
}

// Connect records the connected unit id. Idempotent; the caller verifies the
// target is reachable.
func (s *State) Connect(unitID string) {
	s.ConnectedUnit = unitID
}

// SetMode switches the active command surface
func (s *State) SetMode(m Mode) {
	s.Mode = m
}

// FlagPowerUnstable marks the local power grid as fluctuating
func (s *State) FlagPowerUnstable() {
	s.PowerUnstable = true
}

// InstallFuse settles the power grid, releases the door interlock, and moves
// the fuse from the inventory into the panel.
func (s *State) InstallFuse() {
	s.PowerUnstable = false
	s.DoorUnlocked = true
	s.Explore.MarkFuseInstalled()
}
