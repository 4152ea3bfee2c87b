package main

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/sokoban/ecs/debugui"
	debugui_ebiten "github.com/plus3/sokoban/ecs/debugui/ebiten"
	"github.com/plus3/sokoban/internal/config"
	"github.com/plus3/sokoban/internal/session"
	"github.com/plus3/sokoban/sokoban"
	"go.uber.org/zap"
)

var background = color.RGBA{40, 40, 48, 255}

var tileColors = map[string]color.RGBA{
	sokoban.AssetFloor:   {205, 200, 185, 255},
	sokoban.AssetWall:    {90, 70, 60, 255},
	sokoban.AssetBoxSpot: {220, 120, 120, 255},
	sokoban.AssetBox:     {200, 150, 60, 255},
	sokoban.AssetPlayer:  {70, 130, 200, 255},
}

var directionKeys = map[ebiten.Key]sokoban.Direction{
	ebiten.KeyArrowUp:    sokoban.Up,
	ebiten.KeyArrowDown:  sokoban.Down,
	ebiten.KeyArrowLeft:  sokoban.Left,
	ebiten.KeyArrowRight: sokoban.Right,
	ebiten.KeyW:          sokoban.Up,
	ebiten.KeyS:          sokoban.Down,
	ebiten.KeyA:          sokoban.Left,
	ebiten.KeyD:          sokoban.Right,
}

// Game implements ebiten.Game over a session.
type Game struct {
	session  *session.Session
	logger   *zap.Logger
	tileSize float32
	dt       float64
	overlay  *debugui_ebiten.Overlay
}

func newGame(sess *session.Session, cfg config.Config, logger *zap.Logger) *Game {
	return &Game{
		session:  sess,
		logger:   logger,
		tileSize: float32(cfg.Window.TileSize),
		dt:       1.0 / float64(cfg.TicksPerSecond),
	}
}

func (g *Game) attachOverlay(window config.Window) {
	g.overlay = debugui_ebiten.NewOverlay(window.Title+" (debug)", window.Width, window.Height)
	world := g.session.Game
	g.overlay.Add(debugui.NewStatsPanel(world.Storage(), world.Scheduler(), 120).Render)
	g.overlay.Add(newLevelPanel(g.session).Render)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay == nil || !g.overlay.WantsKeyboard() {
		if err := g.handleKeys(); err != nil {
			return err
		}
	}

	if err := g.session.Game.Tick(); err != nil {
		return err
	}

	if g.overlay != nil {
		return g.overlay.Update(g.dt)
	}
	return nil
}

func (g *Game) handleKeys() error {
	for key, dir := range directionKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Game.Press(dir)
		}
	}

	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		err = g.session.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		err = g.session.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		err = g.session.Prev()
	}
	if err != nil && !errors.Is(err, sokoban.ErrNoLevel) {
		g.logger.Error("level switch failed", zap.Error(err))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	size := g.tileSize
	ox, oy := g.origin(screen)
	for _, sprite := range g.session.Game.SpritesByLayer() {
		c, ok := tileColors[sprite.Asset]
		if !ok {
			continue
		}
		x := ox + float32(sprite.X)*size
		y := oy + float32(sprite.Y)*size
		switch sprite.Asset {
		case sokoban.AssetPlayer:
			vector.DrawFilledCircle(screen, x+size/2, y+size/2, size*0.4, c, true)
		case sokoban.AssetBox, sokoban.AssetBoxSpot:
			inset := size * 0.15
			if sprite.Asset == sokoban.AssetBoxSpot {
				inset = size * 0.35
			}
			vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, c, false)
		default:
			vector.DrawFilledRect(screen, x, y, size, size, c, false)
		}
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// origin centers the level on the screen.
func (g *Game) origin(screen *ebiten.Image) (float32, float32) {
	layout := g.session.Game.Layout()
	if layout == nil {
		return 0, 0
	}
	w := float32(layout.Width()) * g.tileSize
	h := float32(layout.Height()) * g.tileSize
	return (float32(screen.Bounds().Dx()) - w) / 2, (float32(screen.Bounds().Dy()) - h) / 2
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
