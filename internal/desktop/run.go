package desktop

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mysticbrawl/internal/config"
	"mysticbrawl/internal/game"
	"mysticbrawl/internal/palette"
)

// Kill shake, in play units and seconds.
const (
	killShake         = 0.02
	killShakeDuration = 0.25
)

// Run opens a window and plays one session until it ends or the window is
// closed. It blocks on the calling goroutine, which it locks to its OS
// thread for GLFW.
func Run(cfg config.Config, arena *game.Arena) (game.Result, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return game.Result{}, err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return game.Result{}, fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer(palette.Default())
	if err != nil {
		return game.Result{}, fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var audio *Audio
	if cfg.Audio.Enabled {
		audio, err = NewAudio(cfg.Audio.Volume)
		if err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		}
	}

	var cam Camera
	events := arena.Events()
	events.Subscribe(game.EventShotFired, func(game.Event) { audio.Play(SoundShot) })
	events.Subscribe(game.EventEnemyThrew, func(game.Event) { audio.Play(SoundThrow) })
	events.Subscribe(game.EventEnemyKilled, func(e game.Event) {
		audio.Play(SoundKill)
		cam.AddShake(killShake, killShakeDuration)
		window.SetTitle(fmt.Sprintf("%s - Enemies Killed: %d", cfg.Window.Title, e.Score))
	})
	events.Subscribe(game.EventGameOver, func(game.Event) { audio.Play(SoundGameOver) })

	last := glfw.GetTime()
	for {
		glfw.PollEvents()
		now := glfw.GetTime()
		dt := min(now-last, 0.1)
		last = now

		frame, err := arena.Tick(pollInput(window), now)
		if err != nil {
			return game.Result{}, err
		}

		cam.UpdateShake(dt, cfg.Seed^uint64(now*1000))
		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			rend.BeginFrame(fbW, fbH, now, &cam)
			rend.Draw(frame.Draws)
			rend.EndFrame()
			window.SwapBuffers()
		}

		if frame.Over {
			audio.Drain(time.Second)
			return frame.Result, nil
		}
	}
}
