package sokoban_test

import (
	"testing"

	"github.com/plus3/sokoban/sokoban"
	"github.com/stretchr/testify/assert"
)

func TestInputQueueIsLIFO(t *testing.T) {
	var q sokoban.InputQueue
	q.Push(sokoban.Up)
	q.Push(sokoban.Left)

	d, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, sokoban.Left, d)

	d, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, sokoban.Up, d)

	d, ok = q.Pop()
	assert.False(t, ok)
	assert.Equal(t, sokoban.DirectionNone, d)
}

func TestInputQueueDropsInvalid(t *testing.T) {
	var q sokoban.InputQueue
	q.Push(sokoban.DirectionNone)
	q.Push(sokoban.Direction(42))
	q.Push(sokoban.Down)

	assert.Equal(t, 1, q.Len())
	assert.Equal(t, []sokoban.Direction{sokoban.Down}, q.Pending())

	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    sokoban.Direction
		dx, dy int
		name   string
	}{
		{sokoban.Up, 0, -1, "up"},
		{sokoban.Down, 0, 1, "down"},
		{sokoban.Left, -1, 0, "left"},
		{sokoban.Right, 1, 0, "right"},
		{sokoban.DirectionNone, 0, 0, "none"},
		{sokoban.Direction(9), 0, 0, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
			assert.Equal(t, tt.name, tt.dir.String())
		})
	}
}
