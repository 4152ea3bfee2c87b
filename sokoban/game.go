package sokoban

import (
	"fmt"
	"iter"
	"sort"

	"github.com/plus3/sokoban/ecs"
	"go.uber.org/zap"
)

// DefaultTickRate is the number of ticks per second assumed when computing
// the frame delta.
const DefaultTickRate = 60

// Sprite is one drawable entity.
type Sprite struct {
	Asset string
	Position
}

// Game owns the entity store and runs the tick pipeline:
// OccupancySystem, then MovementSystem.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *ecs.Singleton[InputQueue]
	outcome   *ecs.Singleton[MoveOutcome]
	drawables *ecs.View[struct {
		*Renderable
		*Position
	}]
	players *ecs.View[struct {
		*Position
		*Player
	}]

	logger   *zap.Logger
	tickRate int
	level    string
	layout   *Layout
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithTickRate sets the ticks per second used for the frame delta.
func WithTickRate(tps int) Option {
	return func(g *Game) {
		if tps > 0 {
			g.tickRate = tps
		}
	}
}

// NewGame creates an empty world. Call Load before the first Tick.
func NewGame(opts ...Option) *Game {
	g := &Game{
		logger:   zap.NewNop(),
		tickRate: DefaultTickRate,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.storage = ecs.NewStorage(NewRegistry())
	g.input = ecs.NewSingleton[InputQueue](g.storage)
	g.outcome = ecs.NewSingleton[MoveOutcome](g.storage)
	ecs.NewSingleton[Occupancy](g.storage)

	g.drawables = ecs.NewView[struct {
		*Renderable
		*Position
	}](g.storage)
	g.players = ecs.NewView[struct {
		*Position
		*Player
	}](g.storage)

	g.scheduler = ecs.NewScheduler(g.storage)
	g.scheduler.Register(&OccupancySystem{})
	g.scheduler.Register(&MovementSystem{Logger: g.logger.Named("movement")})

	return g
}

// Load replaces the world with the level described by text. The new world is
// staged first: a grammar error or a level without a player leaves the
// current world untouched.
func (g *Game) Load(text string) error {
	staged := ecs.NewCommands()
	layout, err := LoadLevel(staged, text)
	if err != nil {
		return err
	}
	if layout.Count(TilePlayer) == 0 {
		return ErrMissingPlayer
	}

	g.storage.Clear()
	g.input.Get().Clear()
	*g.outcome.Get() = MoveOutcome{}
	staged.Flush(g.storage)

	g.level = text
	g.layout = layout
	g.logger.Info("level loaded",
		zap.Int("width", layout.Width()),
		zap.Int("height", layout.Height()),
		zap.Int("entities", g.storage.EntityCount()),
		zap.Int("boxes", layout.Count(TileBox)),
	)
	return nil
}

// LoadLevel loads a named level from a level set.
func (g *Game) LoadLevel(level Level) error {
	if err := g.Load(level.Map); err != nil {
		return fmt.Errorf("load level %q: %w", level.Name, err)
	}
	return nil
}

// Restart reloads the current level from its text.
func (g *Game) Restart() error {
	if g.layout == nil {
		return ErrNoLevel
	}
	g.logger.Info("level restarted")
	return g.Load(g.level)
}

// Press queues a direction for a later tick.
func (g *Game) Press(d Direction) {
	g.input.Get().Push(d)
}

// Pending returns the number of queued directions.
func (g *Game) Pending() int {
	return g.input.Get().Len()
}

// Tick runs the pipeline once.
func (g *Game) Tick() error {
	return g.scheduler.Once(1.0 / float64(g.tickRate))
}

// Sprites lazily yields every entity with both a Renderable and a Position.
// The sequence can be ranged over again and reflects the current positions.
func (g *Game) Sprites() iter.Seq2[Renderable, Position] {
	return func(yield func(Renderable, Position) bool) {
		for item := range g.drawables.Values() {
			if !yield(*item.Renderable, *item.Position) {
				return
			}
		}
	}
}

// SpritesByLayer returns every sprite in draw order: ascending Z, then row,
// then column.
func (g *Game) SpritesByLayer() []Sprite {
	sprites := make([]Sprite, 0, g.storage.EntityCount())
	for r, p := range g.Sprites() {
		sprites = append(sprites, Sprite{Asset: r.Path, Position: p})
	}
	sort.Slice(sprites, func(i, j int) bool {
		a, b := sprites[i], sprites[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return sprites
}

// PlayerPosition returns the position of the first player entity.
func (g *Game) PlayerPosition() (Position, bool) {
	for item := range g.players.Values() {
		return *item.Position, true
	}
	return Position{}, false
}

// LastMove reports what the most recent tick did.
func (g *Game) LastMove() MoveOutcome {
	return *g.outcome.Get()
}

// Layout returns the parsed current level, or nil before the first Load.
func (g *Game) Layout() *Layout {
	return g.layout
}

func (g *Game) Storage() *ecs.Storage {
	return g.storage
}

func (g *Game) Scheduler() *ecs.Scheduler {
	return g.scheduler
}
