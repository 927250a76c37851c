package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	loaded, err := LoadFrom("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "termgrid.toml", `
fps = 30
backend = "tcell"
queue_size = 64

[audio]
enabled = false
volume = 0.25

[colors]
x = "red"
`)
	envFile := writeFile(t, dir, ".env", "TERMGRID_FPS=20\nTERMGRID_COLOR=256\n")

	cfg, err := LoadFrom(path, envFile, env(map[string]string{"TERMGRID_FPS": "15"}))
	require.NoError(t, err)

	assert.Equal(t, 15.0, cfg.FPS, "process env beats .env and file")
	assert.Equal(t, "256", cfg.Color, ".env beats defaults")
	assert.Equal(t, BackendTcell, cfg.Backend, "file beats defaults")
	assert.Equal(t, 64, cfg.QueueSize)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, map[string]string{"x": "red"}, cfg.Colors)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestMissingEnvFileIgnored(t *testing.T) {
	cfg, err := LoadFrom("", filepath.Join(t.TempDir(), ".env"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestUnknownKeysRejected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "fsp = 30\n")
	_, err := LoadFrom(path, "", nil)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "fsp")
}

func TestMalformedTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "fps = = 30\n")
	_, err := LoadFrom(path, "", nil)
	assert.Error(t, err)
}

func TestEnvParseErrors(t *testing.T) {
	_, err := LoadFrom("", "", env(map[string]string{
		"TERMGRID_FPS":   "fast",
		"TERMGRID_DEBUG": "maybe",
	}))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "TERMGRID_FPS")
	assert.ErrorContains(t, err, "TERMGRID_DEBUG")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"huge fps", func(c *Config) { c.FPS = 1000 }},
		{"backend", func(c *Config) { c.Backend = "curses" }},
		{"color", func(c *Config) { c.Color = "16" }},
		{"queue", func(c *Config) { c.QueueSize = 0 }},
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
