package game

// Action is a logical input the core understands. Frontends translate
// their own key state into a Snapshot of actions once per frame.
type Action uint8

const (
	MoveUpA Action = iota
	MoveDownA
	MoveLeftA
	MoveRightA
	AltUpA // secondary (arrow) bindings for player A
	AltDownA
	AltLeftA
	AltRightA
	MoveUpB
	MoveDownB
	MoveLeftB
	MoveRightB
	FireForwardA
	FireReverseA
	FireLeftB
	FireRightB
	Quit
	actionCount
)

var actionNames = [actionCount]string{
	MoveUpA:      "moveUp_A",
	MoveDownA:    "moveDown_A",
	MoveLeftA:    "moveLeft_A",
	MoveRightA:   "moveRight_A",
	AltUpA:       "altUp_A",
	AltDownA:     "altDown_A",
	AltLeftA:     "altLeft_A",
	AltRightA:    "altRight_A",
	MoveUpB:      "moveUp_B",
	MoveDownB:    "moveDown_B",
	MoveLeftB:    "moveLeft_B",
	MoveRightB:   "moveRight_B",
	FireForwardA: "fireForward_A",
	FireReverseA: "fireReverse_A",
	FireLeftB:    "fireLeft_B",
	FireRightB:   "fireRight_B",
	Quit:         "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Snapshot is the set of actions asserted during one frame.
type Snapshot uint32

// SnapshotOf builds a snapshot with the given actions asserted.
func SnapshotOf(actions ...Action) Snapshot {
	var s Snapshot
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s Snapshot) Has(a Action) bool { return s&(1<<a) != 0 }

func (s Snapshot) With(a Action) Snapshot { return s | 1<<a }

// Latch debounces a held fire action. Once spent by a launch it stays spent
// until the action is released; a press that could not fire leaves it armed.
type Latch struct {
	spent bool
}

// Ready reports whether the action is down and the latch is armed. A
// released action re-arms the latch.
func (l *Latch) Ready(down bool) bool {
	if !down {
		l.spent = false
	}
	return down && !l.spent
}

// Spend marks the latch as used by a launch.
func (l *Latch) Spend() { l.spent = true }
