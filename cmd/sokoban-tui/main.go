// Command sokoban-tui plays Sokoban in a terminal. Arrow keys or hjkl move,
// r restarts, n and p switch level, q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/plus3/sokoban/internal/config"
	"github.com/plus3/sokoban/internal/logging"
	"github.com/plus3/sokoban/internal/progress"
	"github.com/plus3/sokoban/internal/session"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sokoban-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		flags       config.Flags
		logFile     = flag.String("log-file", "sokoban.log", "file receiving log output while the screen is active")
		mute        = flag.Bool("mute", false, "disable the bump sound")
		profileMode = flag.String("profile", "", "write a cpu or mem profile to the working directory")
	)
	flags.Register(flag.CommandLine)
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}

	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}
	// stderr would tear the terminal screen
	cfg.Log.OutputPaths = []string{*logFile}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var store *progress.Store
	if cfg.Save.Enabled {
		store, err = progress.Open(cfg.Save.AppName)
		if err != nil {
			logger.Warn("progress disabled", zap.Error(err))
		}
	}

	sess, err := session.New(cfg, logger, store)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var sound *bumpSound
	if !*mute {
		sound, err = newBumpSound()
		if err != nil {
			logger.Warn("sound disabled", zap.Error(err))
		}
	}
	defer sound.Close()

	t := newTerminal(screen, sess, sound, logger, cfg.TicksPerSecond)
	return t.Run()
}
