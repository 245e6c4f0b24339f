package router

// All narrative text lives here as fixed constants. The router emits these
// byte for byte; styling and pacing are the console's problem.

// RemoteUnit is the only unit reachable from this relay
const RemoteUnit = "unit_12"

// Prologue is emitted once when a session starts, before any input
const Prologue = `OBSERVER RELAY 7 :: BOOT SEQUENCE INITIATED
NODE observer_00 ONLINE
IDENTITY: UNDEFINED
ERROR: identity record missing or redacted
Type 'help' for available commands.`

const terminalHelp = `AVAILABLE COMMANDS:
  help            show this list
  status          node status report
  whoami          identity record
  inbox           pending transmissions
  connect <id>    open a link to a remote unit
  patch           review or apply a conflict patch
  disconnect      drop to the observation room`

const exploreHelp = `EXPLORE COMMANDS:
  look                 describe the room
  move <n|s|e|w>       step in a direction
  inspect <object>     examine something nearby
  take <item>          pick something up
  use <item> <object>  apply an item to an object
  inventory            list carried items
  terminal             return to the console`

const inboxNotice = `1 UNREAD TRANSMISSION
FROM: unit_12 [SECURITY]
"policy conflict detected. requesting arbitration. connect when able."`

const briefing = `LINK ESTABLISHED :: unit_12 [SECURITY]
unit_12: "observer_00. good. i have a problem."
unit_12: "directive 7 orders this deck sealed. directive 12 orders the crew route kept clear."
unit_12: "both cannot hold. i need an arbitration patch."
Type 'patch' to review resolution options.`

const patchOptions = `RESOLUTION OPTIONS:
  A - uphold directive 7: seal the deck          [stability cost: 2]
  B - uphold directive 12: keep the route clear  [stability cost: 2]
  C - suspend both pending supervisor review     [stability cost: 5]
Usage: patch <A|B|C>`

const disconnectNotice = `DISCONNECTED.
You push back from the console. The observation room hums in the half dark.
Type 'look' to get your bearings.`

const (
	linkRestored    = "TERMINAL LINK RESTORED"
	connectUsage    = "Usage: connect <unit_id>"
	patchUsage      = "Usage: patch <A|B|C>"
	unknownTerminal = "Unknown command. Type 'help'."
	unknownExplore  = "Unknown command in explore mode. Type 'help'."

	patchAck        = `unit_12: "conflict resolved. arbitration logged."`
	supervisorStub  = "NOTICE: supervisor node lookup queued. no response."
	powerWarning    = "WARNING: local power grid fluctuation detected."
	powerSuggestion = "Suggest physical inspection of the observation room. Type 'disconnect'."
)

const (
	moveUsage    = "Usage: move <n|s|e|w>"
	inspectUsage = "Usage: inspect <object>"
	takeUsage    = "Usage: take <item>"
	useUsage     = "Usage: use <item> <object>"

	wallBlocked    = "Wall blocks your path."
	nothingHere    = "Nothing like that here."
	inventoryEmpty = "Inventory empty."
	hintLine       = "You can move n/s/e/w, inspect, take, and use what you find."

	roomDescription = "The observation room. Cramped, lit by failing strips."

	lockerFuseHint = "Inside, a fuse rattles loose among stripped wiring."
	panelBurnt     = "Behind the cover, the main fuse has burnt through. The socket sits empty."
	panelSteady    = "The replacement fuse sits snug. The power reads steady."
	doorSealed     = "The bulkhead door is sealed. A red interlock light blinks above it."
	doorReady      = "The interlock light shows green. The door stands ready to open."

	cannotTake    = "You can't take that."
	fuseNotFound  = "You haven't found a fuse yet."
	fuseAlready   = "You already took the fuse."
	fuseTaken     = "You work the fuse free and pocket it."
	fuseMissing   = "You don't have a fuse."
	nothingUseful = "Nothing happens."
	fuseSeated    = "You seat the fuse in the socket. The lights steady overhead."
	doorUnlocked  = "Somewhere in the wall, the door interlock clunks open."
)
