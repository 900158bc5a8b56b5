package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"mysticbrawl/internal/config"
	"mysticbrawl/internal/desktop"
	"mysticbrawl/internal/game"
	"mysticbrawl/internal/term"
)

// GLFW must run on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	configPath := flag.String("config", "", "TOML config file (default $"+config.EnvConfig+")")
	frontend := flag.String("frontend", "", "desktop or terminal")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	fullscreen := flag.Bool("fullscreen", false, "fullscreen on the primary monitor")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = *frontend
		case "seed":
			cfg.Seed = *seed
		case "fullscreen":
			cfg.Fullscreen = *fullscreen
		case "mute":
			cfg.Audio.Enabled = !*mute
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	res, err := run(cfg)
	if err != nil {
		log.Fatalf("%s: %v", cfg.Frontend, err)
	}
	fmt.Printf("Game Over\nEnemies Killed: %d\n", res.FinalScore)
}

func run(cfg config.Config) (game.Result, error) {
	arena := game.NewArena(cfg.Seed)

	if cfg.Frontend == config.FrontendTerminal {
		screen, err := term.Open()
		if err != nil {
			return game.Result{}, fmt.Errorf("terminal init: %w", err)
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return term.Run(ctx, screen, cfg, arena)
	}

	arena.Events().Subscribe(game.EventEnemyKilled, func(e game.Event) {
		log.Printf("%s killed enemy %d, respawned at (%.2f, %.2f), score %d",
			e.Owner, e.Enemy, e.Pos.X, e.Pos.Y, e.Score)
	})
	arena.Events().Subscribe(game.EventGameOver, func(e game.Event) {
		log.Printf("game over: %s", e.Reason)
	})
	return desktop.Run(cfg, arena)
}
