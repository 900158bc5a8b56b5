package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mysticbrawl/internal/game"
	"mysticbrawl/internal/palette"
)

// Cell maps a play-space point onto a w x h grid, +y pointing up the
// screen. Points outside the play square have no cell.
func Cell(p game.Vec2, w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 || !game.InBounds(p) {
		return 0, 0, false
	}
	const span = game.BoundMax - game.BoundMin
	x = int((p.X - game.BoundMin) / span * float64(w))
	y = int((game.BoundMax - p.Y) / span * float64(h))
	return min(x, w-1), min(y, h-1), true
}

func color(c palette.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Paint draws a frame: the play area fills every row but the last, which
// holds the status line.
func Paint(screen tcell.Screen, styles *palette.Table, f game.Frame) {
	w, h := screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return
	}
	screen.Clear()

	bg := styles.For(game.VisualBackground)
	ground := tcell.StyleDefault.Background(color(bg.Color)).Foreground(color(bg.Accent))
	for _, d := range f.Draws {
		s := styles.For(d.Visual)
		if d.Visual == game.VisualBackground {
			for y := range rows {
				for x := range w {
					screen.SetContent(x, y, s.Glyph, nil, ground)
				}
			}
			continue
		}
		x, y, ok := Cell(d.Offset, w, rows)
		if !ok {
			continue
		}
		screen.SetContent(x, y, s.Glyph, nil, ground.Foreground(color(s.Color)).Bold(true))
	}

	status := fmt.Sprintf(" Enemies Killed: %d", f.Score)
	if f.Over {
		status += fmt.Sprintf("  Game Over (%s)", f.Result.Reason)
	}
	putText(screen, 0, h-1, w, status, tcell.StyleDefault.Reverse(true))
}

func putText(screen tcell.Screen, x, y, w int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
