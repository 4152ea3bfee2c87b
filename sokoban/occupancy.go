package sokoban

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/sokoban/ecs"
)

// Occupant is what blocks a cell: an immovable entity or a box.
type Occupant struct {
	Entity ecs.EntityId
	Box    bool
}

// Occupancy indexes blocking entities by cell. It is rebuilt at the start of
// every tick and patched in place when a box moves.
type Occupancy struct {
	cells *intmap.Map[uint64, Occupant]
}

func cellKey(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}

// At returns the occupant of cell (x,y).
func (o *Occupancy) At(x, y int) (Occupant, bool) {
	if o.cells == nil {
		return Occupant{}, false
	}
	return o.cells.Get(cellKey(x, y))
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int {
	if o.cells == nil {
		return 0
	}
	return o.cells.Len()
}

func (o *Occupancy) reset(capacity int) {
	if o.cells == nil {
		o.cells = intmap.New[uint64, Occupant](max(capacity, 64))
		return
	}
	o.cells.Clear()
}

// put records occ at (x,y). An immovable occupant is never replaced by a box.
func (o *Occupancy) put(x, y int, occ Occupant) {
	key := cellKey(x, y)
	if prev, ok := o.cells.Get(key); ok && !prev.Box {
		return
	}
	o.cells.Put(key, occ)
}

func (o *Occupancy) move(from, to Position, occ Occupant) {
	o.cells.Del(cellKey(from.X, from.Y))
	o.cells.Put(cellKey(to.X, to.Y), occ)
}

// OccupancySystem is the first pipeline stage: it rebuilds the Occupancy
// index from Immovable and Box entities.
type OccupancySystem struct {
	Blockers ecs.Query[struct {
		*Position
		*Immovable
	}]
	Boxes ecs.Query[struct {
		ecs.EntityId
		*Position
		*Box
	}]
	Occupancy ecs.Singleton[Occupancy]
}

func (s *OccupancySystem) Execute(frame *ecs.UpdateFrame) error {
	occupancy := s.Occupancy.Get()
	if occupancy == nil {
		return nil
	}

	occupancy.reset(s.Blockers.Len() + s.Boxes.Len())
	for id, blocker := range s.Blockers.Iter() {
		occupancy.put(blocker.Position.X, blocker.Position.Y, Occupant{Entity: id})
	}
	for box := range s.Boxes.Values() {
		occupancy.put(box.Position.X, box.Position.Y, Occupant{Entity: box.EntityId, Box: true})
	}
	return nil
}
