// Command inputlog shows every event the terminal decoder produces.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/termgrid/core"
	"github.com/lixenwraith/termgrid/engine"
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
		fmt.Fprintf(os.Stderr, "inputlog: %v\n", err)
		os.Exit(2)
	}
	if logFile := core.SetupLogging(cfg.LogDir, "inputlog", cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	console, mode, err := cli.OpenConsole(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inputlog: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(console)

	opts := append(cli.DriverOptions(cfg), engine.WithInterval(engine.IntervalForFPS(cfg.FPS)))
	if err := engine.NewDriver(console, opts...).RunStatic(newViewer(mode)); err != nil {
		fmt.Fprintf(os.Stderr, "inputlog: %v\n", err)
		os.Exit(1)
	}
}
