package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termgrid/config"
	"github.com/lixenwraith/termgrid/terminal"
)

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := Register(fs)
	require.NoError(t, fs.Parse([]string{"-fps", "30", "-mute"}))

	cfg := config.Default()
	cfg.Backend = config.BackendTcell
	f.apply(fs, &cfg)

	assert.Equal(t, 30.0, cfg.FPS)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, config.BackendTcell, cfg.Backend, "unset flag keeps config value")
}

func TestOpenConsoleANSI(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "truecolor"

	c, mode, err := OpenConsole(cfg)
	require.NoError(t, err)
	assert.IsType(t, &terminal.Terminal{}, c)
	assert.Equal(t, terminal.ColorModeTrueColor, mode)

	cfg.Backend = "curses"
	_, _, err = OpenConsole(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestMutedPlayer(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.Enabled = false
	p, closeFn := OpenPlayer(cfg)
	defer closeFn()
	p.Play(0)
}

func TestPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Colors = map[string]string{"o": "blue"}
	p, err := Palette(cfg)
	require.NoError(t, err)
	assert.Equal(t, terminal.RGB{B: 255}, p.O)

	cfg.Colors = map[string]string{"o": "bluish"}
	_, err = Palette(cfg)
	assert.Error(t, err)
}
