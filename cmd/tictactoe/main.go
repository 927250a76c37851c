package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/termgrid/core"
	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/games/tictactoe"
	"github.com/lixenwraith/termgrid/internal/cli"
)

func main() {
	// Panic recovery: restores the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := cli.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(2)
	}

	if logFile := core.SetupLogging(cfg.LogDir, "tictactoe", cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	console, mode, err := cli.OpenConsole(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(console)

	palette, err := cli.Palette(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(2)
	}

	player, closePlayer := cli.OpenPlayer(cfg)
	defer closePlayer()

	game := tictactoe.New(tictactoe.Options{
		FPS:     cfg.FPS,
		Mode:    mode,
		Palette: palette,
		Player:  player,
		Col:     3,
		Row:     2,
	})

	driver := engine.NewDriver(console, cli.DriverOptions(cfg)...)
	if err := driver.Run(game); err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		closePlayer()
		os.Exit(1)
	}
}
