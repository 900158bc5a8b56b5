package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearIsAxisAligned(t *testing.T) {
	// Inside the box but outside the inscribed circle.
	assert.True(t, Near(Vec2{}, Vec2{X: 0.09, Y: 0.09}, 0.1))
	assert.False(t, Near(Vec2{}, Vec2{X: 0.1}, 0.1), "bounds are strict")
	assert.False(t, Near(Vec2{}, Vec2{X: 0.05, Y: 0.2}, 0.1), "both axes must be close")
	assert.True(t, Near(Vec2{X: -0.3, Y: 0.3}, Vec2{X: -0.31, Y: 0.29}, 0.03))
}

func TestExcluded(t *testing.T) {
	a, b := Vec2{}, Vec2{X: 0.5, Y: 0.5}
	assert.True(t, Excluded(Vec2{X: 0.19, Y: -0.19}, a, b))
	assert.True(t, Excluded(Vec2{X: 0.6, Y: 0.4}, a, b))
	assert.False(t, Excluded(Vec2{X: 0.25, Y: 0.25}, a, b))
	assert.False(t, Excluded(Vec2{X: 0.9}))
}

func TestSpawnPointAvoidsActors(t *testing.T) {
	rng := NewRand(42)
	a, b := Vec2{X: -0.1, Y: 0.1}, Vec2{X: 0.2, Y: 0.15}
	for range 2000 {
		p, err := SpawnPoint(rng, a, b)
		require.NoError(t, err)
		assert.False(t, Excluded(p, a, b))
		assert.GreaterOrEqual(t, p.X, BoundMin)
		assert.Less(t, p.X, BoundMax)
		assert.GreaterOrEqual(t, p.Y, BoundMin)
		assert.Less(t, p.Y, BoundMax)
	}
}

func TestSpawnPointGivesUp(t *testing.T) {
	// A grid of exclusion boxes that tiles the whole square.
	var grid []Vec2
	for x := -1.0; x <= 1.2; x += 0.3 {
		for y := -1.0; y <= 1.2; y += 0.3 {
			grid = append(grid, Vec2{X: x, Y: y})
		}
	}
	_, err := SpawnPoint(NewRand(1), grid...)
	assert.ErrorIs(t, err, ErrNoSpawnPoint)
}

func TestRandRanges(t *testing.T) {
	r := NewRand(0)
	for range 1000 {
		v := r.RangeF(-1, 1)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
		ang := r.Angle()
		assert.GreaterOrEqual(t, ang, 0.0)
		assert.Less(t, ang, 2*math.Pi)
	}
	assert.Equal(t, 3.0, r.RangeF(3, 3))
}

func TestRandIsDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for range 10 {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(Vec2{X: 1, Y: -1}))
	assert.False(t, InBounds(Vec2{X: 1.0001}))
	assert.False(t, InBounds(Vec2{Y: -1.2}))
}
