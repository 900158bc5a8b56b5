package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"mysticbrawl/internal/config"
	"mysticbrawl/internal/game"
	"mysticbrawl/internal/palette"
)

// Open creates and initializes the terminal screen. The caller must Fini it.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// Run plays one session on an initialized screen. Cancelling ctx counts as
// a quit, so the session still ends through the core.
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config, arena *game.Arena) (game.Result, error) {
	styles := palette.Default()
	hold := NewHolder(time.Duration(cfg.Terminal.HoldMS) * time.Millisecond)

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pump(screen, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Terminal.FPS))
	defer ticker.Stop()

	cancelled := ctx.Done()
	start := time.Now()
	for {
		select {
		case <-cancelled:
			hold.Press(game.Quit, time.Now())
			cancelled = nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := ActionFor(ev); ok {
					hold.Press(a, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			frame, err := arena.Tick(hold.Snapshot(now), now.Sub(start).Seconds())
			if err != nil {
				return game.Result{}, err
			}
			Paint(screen, styles, frame)
			screen.Show()
			if frame.Over {
				return frame.Result, nil
			}
		}
	}
}

// pump forwards screen events until the screen is finalized or done closes.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
