package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/termgrid/core"
	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/games/scribble"
	"github.com/lixenwraith/termgrid/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := cli.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribble: %v\n", err)
		os.Exit(2)
	}

	if logFile := core.SetupLogging(cfg.LogDir, "scribble", cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	console, mode, err := cli.OpenConsole(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribble: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(console)

	palette, err := cli.Palette(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribble: %v\n", err)
		os.Exit(2)
	}

	opts := cli.DriverOptions(cfg)
	// The pad has no frame rate of its own; -fps paces polling when given
	if cfg.FPS > 0 && isFlagSet("fps") {
		opts = append(opts, engine.WithInterval(engine.IntervalForFPS(cfg.FPS)))
	}

	driver := engine.NewDriver(console, opts...)
	if err := driver.RunStatic(scribble.New(mode, palette)); err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "scribble: %v\n", err)
		os.Exit(1)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
