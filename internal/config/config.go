package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// Environment variables read on top of the config file.
const (
	EnvConfig   = "BRAWL_CONFIG"
	EnvSeed     = "BRAWL_SEED"
	EnvFrontend = "BRAWL_FRONTEND"
	EnvMute     = "BRAWL_MUTE"
)

type Config struct {
	Frontend   string `toml:"frontend"`
	Seed       uint64 `toml:"seed"` // 0 picks a seed from the clock
	Fullscreen bool   `toml:"fullscreen"`

	Window   Window   `toml:"window"`
	Audio    Audio    `toml:"audio"`
	Terminal Terminal `toml:"terminal"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type Terminal struct {
	FPS int `toml:"fps"`
	// HoldMS is how long a key counts as held after its last repeat.
	// Terminals report presses only, never releases.
	HoldMS int `toml:"hold_ms"`
}

func Default() Config {
	return Config{
		Frontend: FrontendDesktop,
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Mystic Brawl",
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.6,
		},
		Terminal: Terminal{
			FPS:    60,
			HoldMS: 120,
		},
	}
}

// Load builds the configuration from defaults, an optional .env file in the
// working directory, the TOML file at path (or $BRAWL_CONFIG), and finally
// BRAWL_* environment variables. An empty path with no $BRAWL_CONFIG skips
// the file. The result is not validated: callers layer flags on top and
// call Validate themselves.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if s := os.Getenv(EnvSeed); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = v
	}
	if s := os.Getenv(EnvFrontend); s != "" {
		cfg.Frontend = s
	}
	if s := os.Getenv(EnvMute); s != "" {
		mute, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMute, err)
		}
		if mute {
			cfg.Audio.Enabled = false
		}
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v out of [0, 1]", c.Audio.Volume)
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal fps %d must be positive", c.Terminal.FPS)
	}
	if c.Terminal.HoldMS <= 0 {
		return fmt.Errorf("terminal hold_ms %d must be positive", c.Terminal.HoldMS)
	}
	return nil
}
