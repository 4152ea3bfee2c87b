package sokoban

// Spawner receives entity-creation calls. *ecs.Commands satisfies it, so a
// whole level can be staged and applied at once.
type Spawner interface {
	Spawn(components ...any)
}

func CreateFloor(s Spawner, x, y int) {
	s.Spawn(
		Renderable{Path: AssetFloor},
		Position{X: x, Y: y, Z: LayerFloor},
	)
}

func CreateWall(s Spawner, x, y int) {
	s.Spawn(
		Renderable{Path: AssetWall},
		Position{X: x, Y: y, Z: LayerObject},
		Wall{},
		Immovable{},
	)
}

func CreatePlayer(s Spawner, x, y int) {
	s.Spawn(
		Player{},
		Renderable{Path: AssetPlayer},
		Position{X: x, Y: y, Z: LayerObject},
		Movable{},
	)
}

func CreateBox(s Spawner, x, y int) {
	s.Spawn(
		Renderable{Path: AssetBox},
		Position{X: x, Y: y, Z: LayerObject},
		Box{},
		Movable{},
	)
}

func CreateBoxSpot(s Spawner, x, y int) {
	s.Spawn(
		Renderable{Path: AssetBoxSpot},
		Position{X: x, Y: y, Z: LayerBoxSpot},
		BoxSpot{},
	)
}
