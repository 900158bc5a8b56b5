package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mysticbrawl/internal/game"
)

func TestDefaultCoversEveryVisual(t *testing.T) {
	tbl := Default()
	assert.Equal(t, int(game.VisualCount), tbl.Len())
	for v := range game.VisualCount {
		s, ok := tbl.Lookup(v)
		require.True(t, ok, v.String())
		assert.NotEqual(t, ShapeMissing, s.Shape, v.String())
		assert.Greater(t, s.Size, 0.0)
	}
}

func TestUnknownVisualFallsBack(t *testing.T) {
	tbl := Default()
	_, ok := tbl.Lookup(game.VisualCount)
	assert.False(t, ok)
	assert.Equal(t, Missing, tbl.For(game.VisualCount))
	assert.Equal(t, Missing, NewTable().For(game.VisualPlayerA))
}

func TestSetOverrides(t *testing.T) {
	tbl := Default()
	tbl.Set(game.VisualAxe, Style{Glyph: 'x', Size: 0.1, Shape: ShapeBolt})
	assert.Equal(t, 'x', tbl.For(game.VisualAxe).Glyph)
	assert.Equal(t, int(game.VisualCount), tbl.Len())
}

func TestEnemiesAreDistinct(t *testing.T) {
	tbl := Default()
	a := tbl.For(game.VisualEnemy0).Color
	b := tbl.For(game.VisualEnemy1).Color
	c := tbl.For(game.VisualEnemy2).Color
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.NotEqual(t, a, c)
}

func TestRGBArithmetic(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 10}
	assert.Equal(t, RGB{R: 100, G: 50, B: 5}, c.Mul(128))
	assert.Equal(t, RGB{R: 255, G: 90, B: 0}, c.Add(100, -10, -20))

	r, g, b := RGB{R: 255, B: 51}.Floats()
	assert.InDelta(t, 1.0, r, 1e-6)
	assert.InDelta(t, 0.0, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
}
