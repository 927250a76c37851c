// Package config loads runtime settings from a TOML file, a .env file and the environment.
//
// Precedence, lowest first: Default, the TOML file, .env entries, process
// environment. Command-line flags are applied by the binaries on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation and override parse failure
var ErrInvalid = errors.New("invalid config")

// EnvPrefix prefixes every environment override
const EnvPrefix = "TERMGRID_"

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds settings shared by the game binaries
type Config struct {
	FPS       float64           `toml:"fps"`
	Backend   string            `toml:"backend"`
	Color     string            `toml:"color"`
	QueueSize int               `toml:"queue_size"`
	Debug     bool              `toml:"debug"`
	LogDir    string            `toml:"log_dir"`
	Audio     Audio             `toml:"audio"`
	Colors    map[string]string `toml:"colors"`
}

// Audio controls sound cues
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		FPS:       60,
		Backend:   BackendANSI,
		Color:     "auto",
		QueueSize: 1024,
		LogDir:    "logs",
		Audio:     Audio{Enabled: true, Volume: 0.5},
	}
}

// Load reads path (optional) and ./.env, then applies process environment overrides
func Load(path string) (Config, error) {
	return LoadFrom(path, ".env", os.LookupEnv)
}

// LoadFrom is Load with an explicit .env path and environment lookup
// Empty path or envFile skips that layer; a missing envFile is not an error
func LoadFrom(path, envFile string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
		}
	}

	var dotenv map[string]string
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	get := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(get); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from TERMGRID_* variables
func (c *Config) applyEnv(get func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := get(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	parse := func(name string, set func(string) error) {
		if v, ok := get(EnvPrefix + name); ok {
			if err := set(strings.TrimSpace(v)); err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err))
			}
		}
	}

	str("BACKEND", &c.Backend)
	str("COLOR", &c.Color)
	str("LOG_DIR", &c.LogDir)
	parse("FPS", func(v string) (err error) {
		c.FPS, err = strconv.ParseFloat(v, 64)
		return err
	})
	parse("QUEUE_SIZE", func(v string) (err error) {
		c.QueueSize, err = strconv.Atoi(v)
		return err
	})
	parse("DEBUG", func(v string) (err error) {
		c.Debug, err = strconv.ParseBool(v)
		return err
	})
	parse("AUDIO", func(v string) (err error) {
		c.Audio.Enabled, err = strconv.ParseBool(v)
		return err
	})
	parse("VOLUME", func(v string) (err error) {
		c.Audio.Volume, err = strconv.ParseFloat(v, 64)
		return err
	})

	return errors.Join(errs...)
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	var errs []error
	if c.FPS <= 0 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("%w: fps %v outside (0, 240]", ErrInvalid, c.FPS))
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		errs = append(errs, fmt.Errorf("%w: backend %q, want %s or %s", ErrInvalid, c.Backend, BackendANSI, BackendTcell))
	}
	switch c.Color {
	case "auto", "256", "truecolor":
	default:
		errs = append(errs, fmt.Errorf("%w: color %q, want auto, 256 or truecolor", ErrInvalid, c.Color))
	}
	if c.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("%w: queue_size %d must be positive", ErrInvalid, c.QueueSize))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: audio volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume))
	}
	return errors.Join(errs...)
}
