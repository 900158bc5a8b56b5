package game

// EnemyID is the stable identity of a roster member. Respawns keep it.
type EnemyID uint8

func (id EnemyID) Visual() VisualID { return VisualEnemy0 + VisualID(id) }

// Enemy wanders the arena in a random direction that is re-rolled on a
// fixed period and reflected at the play square border.
type Enemy struct {
	ID       EnemyID
	Pos      Vec2
	Vel      Vec2
	LastTurn float64 // elapsed seconds at the last direction roll
	turned   bool
}

// Roster is the fixed-size enemy pool, indexed by EnemyID.
type Roster [EnemyCount]Enemy

func NewRoster() Roster {
	var r Roster
	for i := range r {
		r[i] = Enemy{ID: EnemyID(i), Pos: enemySpawns[i]}
	}
	return r
}

// Wander advances the enemy by one tick. The first call always rolls a
// direction; later rolls happen once WanderPeriod has elapsed.
func (e *Enemy) Wander(elapsed float64, rng *Rand) {
	if !e.turned || elapsed-e.LastTurn >= WanderPeriod {
		e.turned = true
		e.LastTurn = elapsed
		e.Vel = FromAngle(rng.Angle(), WanderSpeed)
	}
	e.Pos = e.Pos.Add(e.Vel)
	e.Vel.X = bounce(e.Pos.X, e.Vel.X)
	e.Vel.Y = bounce(e.Pos.Y, e.Vel.Y)
}

// bounce negates v when c is past a border and v still points outward.
// The position is left where it is, so an enemy may overshoot briefly.
func bounce(c, v float64) float64 {
	if (c > BoundMax && v > 0) || (c < BoundMin && v < 0) {
		return -v
	}
	return v
}
