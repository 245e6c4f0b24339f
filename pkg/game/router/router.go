// Package router is the command interpreter: it parses one raw input line,
// consults and mutates the world state, and emits an ordered sequence of
// output lines to the console sink. Every command either mutates state and
// reports success, or leaves state untouched and reports why.
package router

import (
	"fmt"
	"strings"

	"observernode/pkg/game/console"
	"observernode/pkg/game/room"
	"observernode/pkg/game/world"
)

// Router owns the world state of one session and dispatches commands by the
// current mode. It is synchronous and single-session: each Handle call runs
// to completion before the next.
type Router struct {
	state *world.State
	out   console.Sink
	cues  console.Cues
}

// New creates a router for a fresh session. A nil cues collaborator is
// replaced with a no-op one.
func New(state *world.State, out console.Sink, cues console.Cues) *Router {
	if cues == nil {
		cues = console.NopCues{}
	}
	return &Router{state: state, out: out, cues: cues}
}

// State exposes the session state, mainly for tests and the serve mode
func (r *Router) State() *world.State {
	return r.state
}

// Boot emits the session prologue. Call once, before the first Handle.
func (r *Router) Boot() {
	r.out.PrintBlock(Prologue)
}

// Handle processes one raw input line. Empty or whitespace-only input is a
// silent no-op. Matching is case-insensitive; original casing is preserved
// where input is echoed back.
func (r *Router) Handle(raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	fields := strings.Fields(trimmed)
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch r.state.Mode {
	case world.ModeTerminal:
		r.handleTerminal(verb, args)
	case world.ModeExplore:
		r.handleExplore(verb, args)
	}
}

func (r *Router) handleTerminal(verb string, args []string) {
	switch verb {
	case "help":
		r.out.PrintBlock(terminalHelp)

	case "status":
		connected := "none"
		if r.state.ConnectedUnit != "" {
			connected = r.state.ConnectedUnit
		}
		r.out.PrintLine("NODE: " + world.NodeID)
		r.out.PrintLine("IDENTITY: " + world.Identity)
		r.out.PrintLine(fmt.Sprintf("STABILITY: %d%%", r.state.Stability))
		r.out.PrintLine("CONNECTED: " + connected)

	case "whoami":
		r.out.PrintLine("NODE: " + world.NodeID)
		r.out.PrintLine("IDENTITY: " + world.Identity)

	case "inbox":
		r.out.PrintBlock(inboxNotice)

	case "connect":
		r.connect(args)

	case "patch":
		r.patch(args)

	case "disconnect":
		r.state.SetMode(world.ModeExplore)
		r.out.PrintBlock(disconnectNotice)

	default:
		r.out.PrintLine(unknownTerminal)
		r.cues.PlayError()
	}
}

func (r *Router) connect(args []string) {
	if len(args) == 0 {
		r.out.PrintLine(connectUsage)
		return
	}

	switch strings.ToLower(args[0]) {
	case "terminal":
		r.state.SetMode(world.ModeTerminal)
		r.out.PrintLine(linkRestored)
	case RemoteUnit:
		r.state.Connect(RemoteUnit)
		r.out.PrintBlock(briefing)
		r.cues.PlayBeep()
	default:
		r.out.PrintLine(fmt.Sprintf("Connection failed: %s not reachable.", args[0]))
	}
}

func (r *Router) patch(args []string) {
	if len(args) == 0 {
		r.out.PrintBlock(patchOptions)
		return
	}

	option := strings.ToUpper(args[0])
	if option != "A" && option != "B" && option != "C" {
		r.out.PrintLine(patchUsage)
		return
	}

	stability := r.state.ApplyPatch(option[0])
	r.out.PrintLine("PATCH APPLIED: " + option)
	r.out.PrintLine(fmt.Sprintf("STABILITY: %d%%", stability))
	r.out.PrintLine(patchAck)
	if option == "C" {
		r.out.PrintLine(supervisorStub)
	}

	r.state.FlagPowerUnstable()
	r.out.PrintLine(powerWarning)
	r.out.PrintLine(powerSuggestion)
	r.cues.PlayBeep()
}

func (r *Router) handleExplore(verb string, args []string) {
	switch verb {
	case "help":
		r.out.PrintBlock(exploreHelp)

	case "look":
		r.look()

	case "move":
		r.move(args)

	case "inspect":
		r.inspect(args)

	case "take":
		r.take(args)

	case "use":
		r.use(args)

	case "inventory":
		r.inventory()

	case "terminal":
		r.state.SetMode(world.ModeTerminal)
		r.out.PrintLine(linkRestored)

	case "connect":
		if len(args) == 1 && strings.ToLower(args[0]) == "terminal" {
			r.state.SetMode(world.ModeTerminal)
			r.out.PrintLine(linkRestored)
			return
		}
		r.out.PrintLine(unknownExplore)
		r.cues.PlayError()

	default:
		r.out.PrintLine(unknownExplore)
		r.cues.PlayError()
	}
}

func (r *Router) look() {
	r.out.PrintLine(roomDescription)
	r.out.PrintBlock(room.Minimap(r.state.Explore.Player))

	var seen []string
	for _, obj := range room.All() {
		seen = append(seen, fmt.Sprintf("%s [%c]", strings.ToLower(obj.Label), obj.Marker))
	}
	r.out.PrintLine("You can see: " + strings.Join(seen, ", ") + ".")
	r.out.PrintLine(hintLine)
}

func (r *Router) move(args []string) {
	if len(args) == 0 {
		r.out.PrintLine(moveUsage)
		return
	}

	dir := world.ParseDirection(strings.ToLower(args[0]))
	moved, pos := r.state.Explore.TryMove(dir)
	if !moved {
		r.out.PrintLine(wallBlocked)
		return
	}

	r.out.PrintLine(fmt.Sprintf("You move %s. Position: (%d,%d)", args[0], pos.X, pos.Y))
	r.out.PrintLine(hintLine)
}

func (r *Router) inspect(args []string) {
	if len(args) == 0 {
		r.out.PrintLine(inspectUsage)
		return
	}

	obj := room.Lookup(args[0])
	if obj == nil {
		r.out.PrintLine(nothingHere)
		r.out.PrintLine(hintLine)
		return
	}

	if !r.state.Explore.IsNear(obj.Position) {
		r.out.PrintLine(obj.Label + " is too far away.")
		r.out.PrintLine(hintLine)
		return
	}

	switch obj.ID {
	case "locker":
		r.state.Explore.MarkLockerInspected()
		r.out.PrintLine(obj.Description)
		r.out.PrintLine(lockerFuseHint)

	case "panel":
		if r.state.PowerUnstable && !r.state.Explore.FuseInstalled {
			r.out.PrintLine(panelBurnt)
		} else if r.state.Explore.FuseInstalled {
			r.out.PrintLine(panelSteady)
		} else {
			r.out.PrintLine(obj.Description)
		}

	case "door":
		if r.state.DoorUnlocked {
			r.out.PrintLine(doorReady)
		} else {
			r.out.PrintLine(doorSealed)
		}

	default:
		r.out.PrintLine(obj.Description)
	}

	r.out.PrintLine(hintLine)
}

func (r *Router) take(args []string) {
	if len(args) == 0 {
		r.out.PrintLine(takeUsage)
		return
	}

	if strings.ToLower(args[0]) != world.FuseItem {
		r.out.PrintLine(cannotTake)
		return
	}

	locker := room.Lookup("locker")
	explore := r.state.Explore

	if !explore.IsNear(locker.Position) {
		r.out.PrintLine(locker.Label + " is too far away.")
		return
	}
	if !explore.LockerInspected {
		r.out.PrintLine(fuseNotFound)
		return
	}
	if explore.FuseTaken {
		r.out.PrintLine(fuseAlready)
		return
	}

	explore.TakeFuse()
	r.out.PrintLine(fuseTaken)
	r.out.PrintLine(hintLine)
}

func (r *Router) use(args []string) {
	if len(args) < 2 {
		r.out.PrintLine(useUsage)
		return
	}

	item := strings.ToLower(args[0])
	target := strings.ToLower(args[1])
	if item != world.FuseItem || target != "panel" {
		r.out.PrintLine(nothingUseful)
		return
	}

	if !r.state.Explore.Inventory.Has(world.FuseItem) {
		r.out.PrintLine(fuseMissing)
		return
	}

	panel := room.Lookup("panel")
	if !r.state.Explore.IsNear(panel.Position) {
		r.out.PrintLine(panel.Label + " is too far away.")
		return
	}

	r.state.InstallFuse()
	r.out.PrintLine(fuseSeated)
	r.out.PrintLine(doorUnlocked)
	r.out.PrintLine(hintLine)
}

func (r *Router) inventory() {
	items := r.state.Explore.Items()
	if len(items) == 0 {
		r.out.PrintLine(inventoryEmpty)
	} else {
		r.out.PrintLine("Carrying: " + strings.Join(items, ", "))
	}
	r.out.PrintLine(hintLine)
}
