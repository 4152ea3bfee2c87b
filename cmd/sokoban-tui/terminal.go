package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/sokoban/internal/session"
	"github.com/plus3/sokoban/sokoban"
	"go.uber.org/zap"
)

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[string]glyph{
	sokoban.AssetFloor:   {' ', tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)},
	sokoban.AssetWall:    {'█', tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)},
	sokoban.AssetBoxSpot: {'·', tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorDarkSlateGray)},
	sokoban.AssetBox:     {'▣', tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkSlateGray)},
	sokoban.AssetPlayer:  {'@', tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorDarkSlateGray).Bold(true)},
}

var arrowKeys = map[tcell.Key]sokoban.Direction{
	tcell.KeyUp:    sokoban.Up,
	tcell.KeyDown:  sokoban.Down,
	tcell.KeyLeft:  sokoban.Left,
	tcell.KeyRight: sokoban.Right,
}

var runeKeys = map[rune]sokoban.Direction{
	'k': sokoban.Up,
	'j': sokoban.Down,
	'h': sokoban.Left,
	'l': sokoban.Right,
}

// terminal runs the session on tcell. Events arrive on a channel from a
// polling goroutine; the game itself is only touched by Run's goroutine.
type terminal struct {
	screen   tcell.Screen
	session  *session.Session
	sound    *bumpSound
	logger   *zap.Logger
	interval time.Duration
	status   string
}

func newTerminal(screen tcell.Screen, sess *session.Session, sound *bumpSound, logger *zap.Logger, tps int) *terminal {
	return &terminal{
		screen:   screen,
		session:  sess,
		sound:    sound,
		logger:   logger,
		interval: time.Second / time.Duration(tps),
	}
}

func (t *terminal) Run() error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case ev := <-events:
			if quit := t.handleEvent(ev); quit {
				return nil
			}
		case <-ticker.C:
			if err := t.session.Game.Tick(); err != nil {
				return err
			}
			if t.session.Game.LastMove().Result == sokoban.MoveBlocked {
				t.sound.Play()
			}
			t.draw()
		}
	}
}

func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if dir, ok := arrowKeys[ev.Key()]; ok {
			t.session.Game.Press(dir)
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		if dir, ok := runeKeys[ev.Rune()]; ok {
			t.session.Game.Press(dir)
			return false
		}

		var err error
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			err = t.session.Restart()
		case 'n':
			err = t.session.Next()
		case 'p':
			err = t.session.Prev()
		}
		if err != nil && !errors.Is(err, sokoban.ErrNoLevel) {
			t.status = err.Error()
			t.logger.Error("level switch failed", zap.Error(err))
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *terminal) draw() {
	t.screen.Clear()

	// SpritesByLayer is Z ordered, so the top glyph of each cell wins
	for _, sprite := range t.session.Game.SpritesByLayer() {
		g, ok := glyphs[sprite.Asset]
		if !ok {
			continue
		}
		t.screen.SetContent(sprite.X, sprite.Y+1, g.r, nil, g.style)
	}

	level := t.session.Current()
	t.drawText(0, 0, fmt.Sprintf("%d/%d %s", t.session.Index()+1, t.session.Levels.Len(), level.Name), tcell.StyleDefault.Bold(true))

	footer := 2
	if layout := t.session.Game.Layout(); layout != nil {
		footer += layout.Height()
	}
	last := t.session.Game.LastMove()
	t.drawText(0, footer, fmt.Sprintf("tick %d  last %s %s", last.Tick, last.Direction, last.Result), tcell.StyleDefault)
	if t.status != "" {
		t.drawText(0, footer+1, t.status, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	t.screen.Show()
}

func (t *terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
