package game

// PlayerID identifies one of the two player-controlled actors.
type PlayerID uint8

const (
	PlayerA PlayerID = iota
	PlayerB
	PlayerCount
)

func (id PlayerID) String() string {
	switch id {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return "?"
}

// Visual returns the draw identity of the player's body.
func (id PlayerID) Visual() VisualID {
	if id == PlayerB {
		return VisualPlayerB
	}
	return VisualPlayerA
}

// Guard is the boundary policy of one binding set.
type Guard uint8

const (
	// Unguarded steps always apply; the actor may leave the play square.
	Unguarded Guard = iota
	// EdgeGuard drops a step once the body edge in the direction of travel
	// would reach the play square border.
	EdgeGuard
)

func (g Guard) allows(c, dir float64) bool {
	if g == Unguarded {
		return true
	}
	if dir > 0 {
		return c+PlayerHalfSize < BoundMax
	}
	return c-PlayerHalfSize > BoundMin
}

// Binding maps four directional actions to a boundary policy.
type Binding struct {
	Up, Down, Left, Right Action
	Guard                 Guard
}

// DefaultBindings returns the binding sets of a player. Player A keeps two
// sets with different guards: WASD is unguarded, the arrow set is guarded.
func DefaultBindings(id PlayerID) []Binding {
	if id == PlayerB {
		return []Binding{
			{Up: MoveUpB, Down: MoveDownB, Left: MoveLeftB, Right: MoveRightB, Guard: EdgeGuard},
		}
	}
	return []Binding{
		{Up: MoveUpA, Down: MoveDownA, Left: MoveLeftA, Right: MoveRightA, Guard: Unguarded},
		{Up: AltUpA, Down: AltDownA, Left: AltLeftA, Right: AltRightA, Guard: EdgeGuard},
	}
}

// Actor is a player-controlled body. It is never destroyed, only moved.
type Actor struct {
	ID       PlayerID
	Pos      Vec2
	Bindings []Binding
}

func NewActor(id PlayerID) Actor {
	return Actor{
		ID:       id,
		Pos:      playerSpawns[id],
		Bindings: DefaultBindings(id),
	}
}

// Move applies one tick of input to the actor's position.
func (a *Actor) Move(in Snapshot) {
	for _, b := range a.Bindings {
		if in.Has(b.Up) && b.Guard.allows(a.Pos.Y, +1) {
			a.Pos.Y += PlayerSpeed
		}
		if in.Has(b.Down) && b.Guard.allows(a.Pos.Y, -1) {
			a.Pos.Y -= PlayerSpeed
		}
		if in.Has(b.Left) && b.Guard.allows(a.Pos.X, -1) {
			a.Pos.X -= PlayerSpeed
		}
		if in.Has(b.Right) && b.Guard.allows(a.Pos.X, +1) {
			a.Pos.X += PlayerSpeed
		}
	}
}
