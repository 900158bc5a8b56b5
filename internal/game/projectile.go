package game

import "fmt"

// Kind distinguishes the slots of one shooter.
type Kind uint8

const (
	Forward Kind = iota // player A, travels +x
	Reverse             // player A, travels -x
	Left                // player B, travels -x
	Right               // player B, travels +x
	Thrown              // enemy axe, any angle
)

func (k Kind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Left:
		return "left"
	case Right:
		return "right"
	case Thrown:
		return "thrown"
	}
	return "unknown"
}

// direction is the sign of a player shot's horizontal travel.
func (k Kind) direction() float64 {
	if k == Reverse || k == Left {
		return -1
	}
	return 1
}

// Owner identifies the shooter of a slot: a player or an enemy.
type Owner struct {
	Enemy  bool
	Player PlayerID // valid when !Enemy
	Foe    EnemyID  // valid when Enemy
}

func PlayerOwner(id PlayerID) Owner { return Owner{Player: id} }

func EnemyOwner(id EnemyID) Owner { return Owner{Enemy: true, Foe: id} }

func (o Owner) String() string {
	if o.Enemy {
		return fmt.Sprintf("enemy%d", o.Foe)
	}
	return "player" + o.Player.String()
}

// Slot holds at most one live projectile. The fire latch and the enemy
// throw timer belong to the slot, not to the shooter.
type Slot struct {
	Owner   Owner
	Kind    Kind
	Trigger Action // player slots only
	Pos     Vec2
	Vel     Vec2
	Active  bool

	latch    Latch
	lastShot float64 // enemy slots only, elapsed seconds of the last cadence tick
	origin   Vec2
	steps    int
}

// Visual returns the draw identity of the projectile.
func (s *Slot) Visual() VisualID {
	if s.Owner.Enemy {
		return VisualAxe
	}
	return VisualBullet
}

func (s *Slot) launch(from, vel Vec2) {
	s.origin = from
	s.steps = 0
	s.Pos = from
	s.Vel = vel
	s.Active = true
}

// Advance moves a live projectile one tick and retires it once it leaves
// play. The position is origin + steps*Vel so a shot lands exactly on the
// boundary instead of drifting past it.
func (s *Slot) Advance() {
	if !s.Active {
		return
	}
	s.steps++
	s.Pos = s.origin.Add(s.Vel.Scale(float64(s.steps)))
	if !s.inPlay() {
		s.Active = false
	}
}

// inPlay applies the retirement bound: player shots only travel on x, so
// only x is checked. Axes check both coordinates.
func (s *Slot) inPlay() bool {
	if s.Owner.Enemy {
		return InBounds(s.Pos)
	}
	return s.Pos.X >= BoundMin && s.Pos.X <= BoundMax
}

// Rearm runs the enemy throw cadence. Every EnemyFirePeriod seconds the
// timer restarts, and an idle slot throws from the enemy's position at a
// random angle. It reports whether a throw happened.
func (s *Slot) Rearm(elapsed float64, from Vec2, rng *Rand) bool {
	if elapsed-s.lastShot < EnemyFirePeriod {
		return false
	}
	s.lastShot = elapsed
	if s.Active {
		return false
	}
	s.launch(from, FromAngle(rng.Angle(), EnemyShotSpeed))
	return true
}

// NewThrowSlot returns the single axe slot of an enemy.
func NewThrowSlot(id EnemyID) Slot {
	return Slot{Owner: EnemyOwner(id), Kind: Thrown}
}

// Arsenal is the pair of mutually exclusive slots a player fires from.
type Arsenal [2]Slot

func NewArsenal(id PlayerID) Arsenal {
	owner := PlayerOwner(id)
	if id == PlayerB {
		return Arsenal{
			{Owner: owner, Kind: Left, Trigger: FireLeftB},
			{Owner: owner, Kind: Right, Trigger: FireRightB},
		}
	}
	return Arsenal{
		{Owner: owner, Kind: Forward, Trigger: FireForwardA},
		{Owner: owner, Kind: Reverse, Trigger: FireReverseA},
	}
}

// Busy reports whether any slot of the arsenal holds a live projectile.
func (ar *Arsenal) Busy() bool {
	for i := range ar {
		if ar[i].Active {
			return true
		}
	}
	return false
}

// Trigger updates every slot latch from the snapshot and fires at most one
// slot, only while the arsenal is idle. A trigger held through a busy
// arsenal fires once the arsenal frees up; a trigger that already fired
// must be released first. Earlier slots win when both are ready.
func (ar *Arsenal) Trigger(in Snapshot, from Vec2) *Slot {
	var fired *Slot
	for i := range ar {
		s := &ar[i]
		if s.latch.Ready(in.Has(s.Trigger)) && fired == nil && !ar.Busy() {
			s.launch(from, Vec2{X: s.Kind.direction() * PlayerShotSpeed})
			s.latch.Spend()
			fired = s
		}
	}
	return fired
}

// Advance moves every live slot of the arsenal.
func (ar *Arsenal) Advance() {
	for i := range ar {
		ar[i].Advance()
	}
}
