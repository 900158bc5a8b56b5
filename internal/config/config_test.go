package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with every BRAWL_* variable
// cleared.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{EnvConfig, EnvSeed, EnvFrontend, EnvMute} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "Mystic Brawl", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
}

func TestLoadTOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "brawl.toml")
	writeFile(t, path, `
frontend = "terminal"
seed = 42
fullscreen = true

[window]
width = 1024

[audio]
volume = 0.25

[terminal]
fps = 30
hold_ms = 200
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Fullscreen)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, Terminal{FPS: 30, HoldMS: 200}, cfg.Terminal)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "brawl.toml")
	writeFile(t, path, "[window]\ncolour = \"red\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.colour")
}

func TestLoadMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "brawl.toml")
	writeFile(t, path, "seed = 1\nfrontend = \"desktop\"\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvFrontend, FrontendTerminal)
	t.Setenv(EnvMute, "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.False(t, cfg.Audio.Enabled)
}

func TestDotenvFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "BRAWL_SEED=99\n")
	// godotenv never overrides variables that are already set, and
	// isolate sets them empty; unset this one so .env can supply it.
	require.NoError(t, os.Unsetenv(EnvSeed))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestBadEnvValues(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSeed, "minus one")
	_, err := Load("")
	assert.ErrorContains(t, err, EnvSeed)

	t.Setenv(EnvSeed, "")
	t.Setenv(EnvMute, "perhaps")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvMute)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	isolate(t)
	t.Setenv(EnvFrontend, "web")

	cfg, err := Load("")
	require.NoError(t, err, "a later flag may still replace the frontend")
	assert.Equal(t, "web", cfg.Frontend)
	assert.Error(t, cfg.Validate())

	cfg.Frontend = FrontendTerminal
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"frontend", func(c *Config) { c.Frontend = "web" }},
		{"width", func(c *Config) { c.Window.Width = 0 }},
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"fps", func(c *Config) { c.Terminal.FPS = -1 }},
		{"hold", func(c *Config) { c.Terminal.HoldMS = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
