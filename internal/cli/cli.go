// Package cli holds the flag, config and collaborator wiring shared by the game binaries.
package cli

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/termgrid/audio"
	"github.com/lixenwraith/termgrid/config"
	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tcellterm"
	"github.com/lixenwraith/termgrid/theme"
)

// Flags are the command-line settings common to every binary
type Flags struct {
	ConfigPath string
	FPS        float64
	Backend    string
	Color      string
	Debug      bool
	Mute       bool
}

// Register binds the common flags to fs
func Register(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a TOML config file")
	fs.Float64Var(&f.FPS, "fps", 0, "Frames per second (overrides config)")
	fs.StringVar(&f.Backend, "backend", "", "Terminal backend: ansi, tcell")
	fs.StringVar(&f.Color, "color", "", "Color mode: auto, truecolor, 256")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug log to the log directory")
	fs.BoolVar(&f.Mute, "mute", false, "Disable sound")
	return f
}

// Resolve loads configuration and applies only the flags set on fs
func (f *Flags) Resolve(fs *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	f.apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (f *Flags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "fps":
			cfg.FPS = f.FPS
		case "backend":
			cfg.Backend = f.Backend
		case "color":
			cfg.Color = f.Color
		case "debug":
			cfg.Debug = f.Debug
		case "mute":
			cfg.Audio.Enabled = !f.Mute
		}
	})
}

// OpenConsole creates the configured terminal collaborator; frames go to stdout
func OpenConsole(cfg config.Config) (engine.Console, terminal.ColorMode, error) {
	mode := terminal.ParseColorMode(cfg.Color)
	switch cfg.Backend {
	case config.BackendTcell:
		c, err := tcellterm.New(os.Stdout)
		if err != nil {
			return nil, mode, err
		}
		return c, mode, nil
	case config.BackendANSI:
		return terminal.New(mode), mode, nil
	default:
		return nil, mode, fmt.Errorf("%w: backend %q", config.ErrInvalid, cfg.Backend)
	}
}

// OpenPlayer returns a speaker player, or Nop when muted or the device is unavailable
// The returned func releases the device
func OpenPlayer(cfg config.Config) (audio.Player, func()) {
	if !cfg.Audio.Enabled {
		return audio.Nop{}, func() {}
	}
	s := audio.NewSpeaker(cfg.Audio.Volume)
	if err := s.Init(); err != nil {
		log.Printf("audio unavailable, continuing muted: %v", err)
		return audio.Nop{}, func() {}
	}
	return s, s.Close
}

// Palette applies configured color overrides to the default palette
func Palette(cfg config.Config) (*theme.Palette, error) {
	p := theme.Default()
	if err := p.Apply(cfg.Colors); err != nil {
		return nil, err
	}
	return &p, nil
}

// DriverOptions maps configuration onto engine options
func DriverOptions(cfg config.Config) []engine.Option {
	return []engine.Option{
		engine.WithLogger(log.Default()),
		engine.WithQueueSize(cfg.QueueSize),
	}
}
