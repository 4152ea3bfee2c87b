package sokoban

import (
	"fmt"

	"github.com/plus3/sokoban/ecs"
)

// Draw layers. Only renderers look at Z.
const (
	LayerFloor   = 5
	LayerBoxSpot = 9
	LayerObject  = 10
)

// Asset references carried by Renderable.
const (
	AssetFloor   = "/floor.png"
	AssetWall    = "/wall.png"
	AssetPlayer  = "/player.png"
	AssetBox     = "/box.png"
	AssetBoxSpot = "/box_spot.png"
)

// Position is a grid cell plus a draw layer. X grows right, Y grows down.
type Position struct {
	X, Y, Z int
}

// SameCell compares X and Y only.
func (p Position) SameCell(o Position) bool {
	return p.X == o.X && p.Y == o.Y
}

// Step returns p moved by one cell in direction d. Z is kept.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Renderable names the asset drawn for an entity.
type Renderable struct {
	Path string
}

// Tag components.
type (
	Wall      struct{}
	Player    struct{}
	Box       struct{}
	BoxSpot   struct{}
	Movable   struct{}
	Immovable struct{}
)

// NewRegistry returns a component registry with every component type the
// game spawns.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Renderable](registry)
	ecs.RegisterComponent[Wall](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Box](registry)
	ecs.RegisterComponent[BoxSpot](registry)
	ecs.RegisterComponent[Movable](registry)
	ecs.RegisterComponent[Immovable](registry)
	return registry
}
