package term

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"

	"mysticbrawl/internal/game"
)

// Same physical layout as the desktop frontend.
var runeActions = map[rune]game.Action{
	'w': game.MoveUpA,
	's': game.MoveDownA,
	'a': game.MoveLeftA,
	'd': game.MoveRightA,
	'i': game.MoveUpB,
	'k': game.MoveDownB,
	'j': game.MoveLeftB,
	'l': game.MoveRightB,
	'z': game.FireForwardA,
	'x': game.FireReverseA,
	'p': game.FireLeftB,
	'o': game.FireRightB,
}

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyUp:     game.AltUpA,
	tcell.KeyDown:   game.AltDownA,
	tcell.KeyLeft:   game.AltLeftA,
	tcell.KeyRight:  game.AltRightA,
	tcell.KeyEscape: game.Quit,
	tcell.KeyCtrlC:  game.Quit,
}

// ActionFor maps a key event to the action it asserts.
func ActionFor(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeActions[unicode.ToLower(ev.Rune())]
		return a, ok
	}
	a, ok := keyActions[ev.Key()]
	return a, ok
}

// Holder turns key press events into held state. Terminals report presses
// and auto-repeats but never releases, so an action stays down for window
// after its last press. Quit is sticky.
type Holder struct {
	window time.Duration
	last   *intmap.Map[game.Action, time.Time]
	quit   bool
}

func NewHolder(window time.Duration) *Holder {
	return &Holder{
		window: window,
		last:   intmap.New[game.Action, time.Time](int(game.Quit) + 1),
	}
}

func (h *Holder) Press(a game.Action, at time.Time) {
	if a == game.Quit {
		h.quit = true
		return
	}
	h.last.Put(a, at)
}

// Snapshot returns every action pressed within the hold window before now.
func (h *Holder) Snapshot(now time.Time) game.Snapshot {
	var in game.Snapshot
	for a := game.MoveUpA; a < game.Quit; a++ {
		if at, ok := h.last.Get(a); ok && now.Sub(at) < h.window {
			in = in.With(a)
		}
	}
	if h.quit {
		in = in.With(game.Quit)
	}
	return in
}
