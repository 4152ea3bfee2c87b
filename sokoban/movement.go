package sokoban

import (
	"errors"

	"github.com/plus3/sokoban/ecs"
	"go.uber.org/zap"
)

// MoveResult is the outcome of one movement tick.
type MoveResult uint8

const (
	MoveNone    MoveResult = iota // no input pending
	MoveStepped                   // player moved onto a free cell
	MovePushed                    // player moved and pushed a box
	MoveBlocked                   // wall, or a box that could not move
)

func (r MoveResult) String() string {
	switch r {
	case MoveStepped:
		return "stepped"
	case MovePushed:
		return "pushed"
	case MoveBlocked:
		return "blocked"
	}
	return "none"
}

// MoveOutcome records what the movement system did on its last run.
type MoveOutcome struct {
	Tick      uint64
	Direction Direction
	Result    MoveResult
	From      Position
	To        Position
}

var errNoOccupancy = errors.New("occupancy index not initialized")

// MovementSystem resolves at most one player move per tick.
//
// The most recent pending direction is popped. A step onto an Immovable is
// rejected. A step onto a box pushes that single box one cell further when
// the cell beyond holds neither an Immovable nor another box; otherwise the
// whole move is rejected. Rejection leaves every position unchanged.
type MovementSystem struct {
	Players ecs.Query[struct {
		ecs.EntityId
		*Position
		*Player
	}]
	Input     ecs.Singleton[InputQueue]
	Occupancy ecs.Singleton[Occupancy]
	Outcome   ecs.Singleton[MoveOutcome]

	Logger *zap.Logger
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) error {
	_, player, ok := s.Players.First()
	if !ok {
		return ErrMissingPlayer
	}

	outcome := s.Outcome.Get()
	if outcome == nil {
		outcome = &MoveOutcome{}
	}
	*outcome = MoveOutcome{Tick: frame.Tick, From: *player.Position, To: *player.Position}

	queue := s.Input.Get()
	if queue == nil {
		return nil
	}
	dir, ok := queue.Pop()
	if !ok {
		return nil
	}
	outcome.Direction = dir

	occupancy := s.Occupancy.Get()
	if occupancy == nil {
		return errNoOccupancy
	}

	dest := player.Position.Step(dir)
	occ, occupied := occupancy.At(dest.X, dest.Y)

	switch {
	case !occupied:
		outcome.Result = MoveStepped

	case !occ.Box:
		outcome.Result = MoveBlocked

	default:
		beyond := dest.Step(dir)
		if _, blocked := occupancy.At(beyond.X, beyond.Y); blocked {
			outcome.Result = MoveBlocked
			break
		}
		box := ecs.ReadComponent[Position](frame.Storage, occ.Entity)
		if box == nil {
			outcome.Result = MoveBlocked
			break
		}
		from := *box
		box.X, box.Y = beyond.X, beyond.Y
		occupancy.move(from, *box, occ)
		outcome.Result = MovePushed
	}

	if outcome.Result == MoveBlocked {
		s.logger().Debug("move blocked",
			zap.Stringer("direction", dir),
			zap.Stringer("from", player.Position),
			zap.Stringer("to", dest),
		)
		return nil
	}

	player.Position.X, player.Position.Y = dest.X, dest.Y
	outcome.To = *player.Position
	s.logger().Debug("player moved",
		zap.Stringer("direction", dir),
		zap.Stringer("result", outcome.Result),
		zap.Stringer("to", dest),
	)
	return nil
}

func (s *MovementSystem) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
