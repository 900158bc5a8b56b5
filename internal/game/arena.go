package game

// Arena is the frame orchestrator. It owns every entity and advances them
// in a fixed order on each Tick.
type Arena struct {
	session *GameSession
	events  *EventBus
	rng     *Rand

	actors   [PlayerCount]Actor
	arsenals [PlayerCount]Arsenal
	enemies  Roster
	throws   [EnemyCount]Slot

	started bool
	epoch   float64 // clock value of the first tick
	elapsed float64

	draws []DrawRequest
}

func NewArena(seed uint64) *Arena {
	a := &Arena{
		session: NewGameSession(),
		events:  NewEventBus(),
		rng:     NewRand(seed),
		enemies: NewRoster(),
		draws:   make([]DrawRequest, 0, 1+int(PlayerCount)+2*int(PlayerCount)+2*EnemyCount),
	}
	for id := range PlayerCount {
		a.actors[id] = NewActor(id)
		a.arsenals[id] = NewArsenal(id)
	}
	for i := range a.throws {
		a.throws[i] = NewThrowSlot(EnemyID(i))
	}
	return a
}

func (a *Arena) Events() *EventBus { return a.events }

func (a *Arena) Session() *GameSession { return a.session }

func (a *Arena) Actor(id PlayerID) *Actor { return &a.actors[id] }

func (a *Arena) Arsenal(id PlayerID) *Arsenal { return &a.arsenals[id] }

func (a *Arena) Enemy(id EnemyID) *Enemy { return &a.enemies[id] }

func (a *Arena) Throw(id EnemyID) *Slot { return &a.throws[id] }

// Elapsed returns the seconds between the first tick and the latest one.
func (a *Arena) Elapsed() float64 { return a.elapsed }

// Tick advances the simulation by one frame. now is the host clock in
// seconds; cadences run on the time elapsed since the first tick. Once the
// session is over Tick mutates nothing and returns the final frame.
func (a *Arena) Tick(in Snapshot, now float64) (Frame, error) {
	if a.session.Over() {
		return a.frame(), nil
	}
	if !a.started {
		a.started = true
		a.epoch = now
	}
	a.elapsed = now - a.epoch

	for p := range a.actors {
		a.actors[p].Move(in)
	}

	for p := range a.arsenals {
		ar := &a.arsenals[p]
		if s := ar.Trigger(in, a.actors[p].Pos); s != nil {
			a.events.Emit(Event{Type: EventShotFired, Pos: s.Pos, Owner: s.Owner})
		}
		ar.Advance()
	}
	for e := range a.throws {
		s := &a.throws[e]
		if s.Rearm(a.elapsed, a.enemies[e].Pos, a.rng) {
			a.events.Emit(Event{Type: EventEnemyThrew, Pos: s.Pos, Owner: s.Owner, Enemy: EnemyID(e)})
		}
		s.Advance()
	}

	for e := range a.enemies {
		a.enemies[e].Wander(a.elapsed, a.rng)
	}

	if err := a.resolve(); err != nil {
		return Frame{}, err
	}

	a.collectDraws()

	if in.Has(Quit) {
		a.end(EndQuit)
	}
	return a.frame(), nil
}

// collectDraws rebuilds the draw list in z-order: background, actors,
// live projectiles, enemies.
func (a *Arena) collectDraws() {
	a.draws = a.draws[:0]
	a.draws = append(a.draws, DrawRequest{Visual: VisualBackground})
	for p := range a.actors {
		a.draws = append(a.draws, DrawRequest{Offset: a.actors[p].Pos, Visual: a.actors[p].ID.Visual()})
	}
	for p := range a.arsenals {
		for i := range a.arsenals[p] {
			a.appendShot(&a.arsenals[p][i])
		}
	}
	for e := range a.throws {
		a.appendShot(&a.throws[e])
	}
	for e := range a.enemies {
		a.draws = append(a.draws, DrawRequest{Offset: a.enemies[e].Pos, Visual: a.enemies[e].ID.Visual()})
	}
}

func (a *Arena) appendShot(s *Slot) {
	if s.Active {
		a.draws = append(a.draws, DrawRequest{Offset: s.Pos, Visual: s.Visual()})
	}
}

func (a *Arena) end(reason EndReason) {
	if !a.session.End(reason) {
		return
	}
	a.events.Emit(Event{Type: EventGameOver, Score: a.session.Score, Reason: reason})
}

func (a *Arena) frame() Frame {
	return Frame{
		Draws:  a.draws,
		Score:  a.session.Score,
		Over:   a.session.Over(),
		Result: a.session.Result(),
	}
}
