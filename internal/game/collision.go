package game

import (
	"errors"
	"fmt"
)

// ErrNoSpawnPoint means respawn placement ran out of attempts.
var ErrNoSpawnPoint = errors.New("no spawn point outside exclusion zones")

// resolve runs the collision pass once per tick, after all movement.
// Terminal checks run first and end the pass; scoring only runs while the
// session is still live.
func (a *Arena) resolve() error {
	for i := range a.throws {
		s := &a.throws[i]
		if !s.Active {
			continue
		}
		for p := range a.actors {
			if Near(s.Pos, a.actors[p].Pos, AxeHitRadius) {
				a.end(EndHitByAxe)
				return nil
			}
		}
	}

	for e := range a.enemies {
		for p := range a.actors {
			if Near(a.actors[p].Pos, a.enemies[e].Pos, BodyHitRadius) {
				a.end(EndCollided)
				return nil
			}
		}
	}

	for p := range a.arsenals {
		for i := range a.arsenals[p] {
			s := &a.arsenals[p][i]
			if !s.Active {
				continue
			}
			if err := a.score(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// score checks one live player shot against the roster. A shot scores at
// most once: it is retired on its first hit.
func (a *Arena) score(s *Slot) error {
	for e := range a.enemies {
		en := &a.enemies[e]
		if !Near(s.Pos, en.Pos, ShotHitRadius) {
			continue
		}
		a.session.AddKill()
		s.Active = false

		pos, err := SpawnPoint(a.rng, a.actors[PlayerA].Pos, a.actors[PlayerB].Pos)
		if err != nil {
			return fmt.Errorf("respawn enemy %d: %w", en.ID, err)
		}
		en.Pos = pos

		a.events.Emit(Event{
			Type:  EventEnemyKilled,
			Pos:   pos,
			Owner: s.Owner,
			Enemy: en.ID,
			Score: a.session.Score,
		})
		return nil
	}
	return nil
}
