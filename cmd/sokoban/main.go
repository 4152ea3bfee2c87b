// Command sokoban plays Sokoban in an ebiten window. Arrow keys move, R
// restarts, N and P switch level, Q or Escape quits. -debug adds an ImGui
// overlay showing the world and scheduler.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sokoban/internal/config"
	"github.com/plus3/sokoban/internal/logging"
	"github.com/plus3/sokoban/internal/progress"
	"github.com/plus3/sokoban/internal/session"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sokoban:", err)
		os.Exit(1)
	}
}

func run() error {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}

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

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TicksPerSecond)

	game := newGame(sess, cfg, logger)
	if cfg.Debug {
		game.attachOverlay(cfg.Window)
	}

	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	logger.Info("exiting", zap.Uint64("ticks", sess.Game.Scheduler().Ticks()))
	return nil
}
