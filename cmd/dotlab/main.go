// Command dotlab runs the collision demos in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dotlab/audio"
	"github.com/lixenwraith/dotlab/config"
	"github.com/lixenwraith/dotlab/game"
)

var (
	sceneFlag  = flag.String("scene", "", "Scene: circle, pixel, scroll, save (overrides config)")
	configFlag = flag.String("config", "", "Path to a TOML config file (default: ./dotlab.toml if present)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs under the log directory")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run wires and runs the game, returning the process exit code
// Every exit goes through here so deferred cleanup always runs
func run() (code int) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}
	if *sceneFlag != "" {
		kind, err := game.ParseSceneKind(*sceneFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -scene: %v\n", err)
			return 2
		}
		cfg.Scene = kind
	}
	if *debugFlag {
		cfg.Debug = true
	}

	log, logSink := setupLogging(cfg.Debug, cfg.LogDir)
	if logSink != nil {
		defer logSink.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Messages for stderr wait until tcell has released the terminal
	var exitMsg string
	defer func() {
		if exitMsg != "" {
			fmt.Fprint(os.Stderr, exitMsg)
		}
	}()
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			exitMsg = fmt.Sprintf("\n\x1b[31mDOTLAB CRASHED: %v\x1b[0m\nStack Trace:\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	var sound game.Sound
	sm := audio.NewSoundManager(cfg.Audio)
	if err := sm.Initialize(); err == nil {
		sound = sm
		defer sm.Cleanup()
	} else if !errors.Is(err, audio.ErrDisabled) {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}

	g, err := game.New(screen, cfg.GameOptions(), sound, log)
	if err != nil {
		exitMsg = fmt.Sprintf("Failed to start: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("frame loop failed")
		exitMsg = fmt.Sprintf("Run error: %v\n", err)
		code = 1
	}
	if err := g.Close(); err != nil {
		log.WithError(err).Error("save failed")
		exitMsg += fmt.Sprintf("Save error: %v\n", err)
		code = 1
	}
	return code
}
