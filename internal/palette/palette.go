package palette

import (
	"github.com/kamstrup/intmap"

	"mysticbrawl/internal/game"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: clamp8(int(c.R) + dr), G: clamp8(int(c.G) + dg), B: clamp8(int(c.B) + db)}
}

// Floats returns the colour as normalized shader components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Shape selects the procedural pattern the quad shader paints.
type Shape int32

const (
	ShapeField   Shape = iota // mown grass background
	ShapeBody                 // outlined rounded square
	ShapeWisp                 // pulsing disc with a dark core
	ShapeBolt                 // soft glowing dot
	ShapeAxe                  // spinning diamond
	ShapeMissing              // magenta checker
)

// Style is how one visual looks on every frontend.
type Style struct {
	Color  RGB
	Accent RGB
	Size   float64 // half extent in play units
	Shape  Shape
	Glyph  rune // terminal cell
}

// Missing is drawn for any visual without a registered style.
var Missing = Style{
	Color:  RGB{R: 255, G: 0, B: 255},
	Accent: RGB{R: 0, G: 0, B: 0},
	Size:   0.05,
	Shape:  ShapeMissing,
	Glyph:  '?',
}

// Table maps visuals to styles.
type Table struct {
	styles *intmap.Map[game.VisualID, Style]
}

func NewTable() *Table {
	return &Table{styles: intmap.New[game.VisualID, Style](int(game.VisualCount))}
}

// Default returns the built-in arena look.
func Default() *Table {
	t := NewTable()
	t.Set(game.VisualBackground, Style{
		Color:  RGB{R: 92, G: 128, B: 64},
		Accent: RGB{R: 120, G: 150, B: 85},
		Size:   1,
		Shape:  ShapeField,
		Glyph:  ' ',
	})
	t.Set(game.VisualPlayerA, Style{
		Color:  RGB{R: 70, G: 130, B: 220},
		Accent: RGB{R: 20, G: 30, B: 60},
		Size:   game.PlayerHalfSize,
		Shape:  ShapeBody,
		Glyph:  'A',
	})
	t.Set(game.VisualPlayerB, Style{
		Color:  RGB{R: 230, G: 180, B: 60},
		Accent: RGB{R: 70, G: 45, B: 10},
		Size:   game.PlayerHalfSize,
		Shape:  ShapeBody,
		Glyph:  'B',
	})
	enemy := RGB{R: 170, G: 60, B: 200}
	for i, shade := range []int{0, 30, -30} {
		t.Set(game.EnemyID(i).Visual(), Style{
			Color:  enemy.Add(shade, 0, -shade),
			Accent: RGB{R: 25, G: 5, B: 35},
			Size:   game.BodyHitRadius,
			Shape:  ShapeWisp,
			Glyph:  'M',
		})
	}
	t.Set(game.VisualBullet, Style{
		Color:  RGB{R: 255, G: 240, B: 150},
		Accent: RGB{R: 255, G: 200, B: 90},
		Size:   0.025,
		Shape:  ShapeBolt,
		Glyph:  '-',
	})
	t.Set(game.VisualAxe, Style{
		Color:  RGB{R: 200, G: 205, B: 215},
		Accent: RGB{R: 110, G: 70, B: 40},
		Size:   0.035,
		Shape:  ShapeAxe,
		Glyph:  '*',
	})
	return t
}

func (t *Table) Set(v game.VisualID, s Style) { t.styles.Put(v, s) }

func (t *Table) Lookup(v game.VisualID) (Style, bool) { return t.styles.Get(v) }

// For returns the style of v, or Missing when none is registered.
func (t *Table) For(v game.VisualID) Style {
	if s, ok := t.styles.Get(v); ok {
		return s
	}
	return Missing
}

func (t *Table) Len() int { return t.styles.Len() }
