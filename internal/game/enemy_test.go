package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWanderRollsImmediatelyThenOnPeriod(t *testing.T) {
	rng := NewRand(7)
	e := Enemy{Pos: Vec2{}}

	e.Wander(0, rng)
	assert.True(t, e.turned)
	assert.Equal(t, 0.0, e.LastTurn)
	assert.InDelta(t, WanderSpeed, e.Vel.Len(), 1e-12)

	vel := e.Vel
	e.Wander(1.99, rng)
	assert.Equal(t, vel, e.Vel, "no re-roll before the period")
	assert.Equal(t, 0.0, e.LastTurn)

	e.Wander(2.0, rng)
	assert.Equal(t, 2.0, e.LastTurn)
	assert.InDelta(t, WanderSpeed, e.Vel.Len(), 1e-12)
}

func TestWanderIntegratesEveryTick(t *testing.T) {
	e := Enemy{Pos: Vec2{X: 0.1, Y: 0.2}, Vel: Vec2{X: 0.005}, turned: true}
	for range 4 {
		e.Wander(0.5, NewRand(1))
	}
	assert.InDelta(t, 0.12, e.Pos.X, 1e-12)
	assert.InDelta(t, 0.2, e.Pos.Y, 1e-12)
}

func TestBounceFlipsOncePerCrossing(t *testing.T) {
	rng := NewRand(3)
	e := Enemy{Pos: Vec2{X: 0.998, Y: -0.997}, Vel: Vec2{X: 0.005, Y: -0.005}, turned: true}

	flipsX, flipsY := 0, 0
	for range 20 {
		vx, vy := e.Vel.X, e.Vel.Y
		e.Wander(1.0, rng)
		if vx*e.Vel.X < 0 {
			flipsX++
		}
		if vy*e.Vel.Y < 0 {
			flipsY++
		}
	}
	assert.Equal(t, 1, flipsX)
	assert.Equal(t, 1, flipsY)
	assert.Less(t, e.Vel.X, 0.0)
	assert.Greater(t, e.Vel.Y, 0.0)
}

func TestBounceDoesNotClampPosition(t *testing.T) {
	e := Enemy{Pos: Vec2{X: 0.998}, Vel: Vec2{X: 0.005}, turned: true}
	e.Wander(0, NewRand(1))
	assert.Greater(t, e.Pos.X, BoundMax)
	assert.Less(t, e.Vel.X, 0.0)
}

func TestBounceKeepsInwardVelocity(t *testing.T) {
	assert.Equal(t, -0.005, bounce(1.2, -0.005))
	assert.Equal(t, 0.005, bounce(-1.2, 0.005))
	assert.Equal(t, -0.005, bounce(1.2, 0.005))
	assert.Equal(t, 0.005, bounce(0.5, 0.005))
}

func TestNewRoster(t *testing.T) {
	r := NewRoster()
	for i := range r {
		assert.Equal(t, EnemyID(i), r[i].ID)
		assert.Equal(t, enemySpawns[i], r[i].Pos)
	}
	assert.Equal(t, VisualEnemy2, r[2].ID.Visual())
}
