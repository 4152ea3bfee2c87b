package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/sokoban/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movers struct {
	*Position
	*Velocity
}

func TestViewMatchesSupersets(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 2}, Name{Value: "named"})
	storage.Spawn(Position{X: 3})

	view := ecs.NewView[movers](storage)
	assert.Equal(t, 2, view.Count())

	var xs []int
	for item := range view.Values() {
		xs = append(xs, item.Position.X)
	}
	slices.Sort(xs)
	assert.Equal(t, []int{1, 2}, xs)
}

func TestViewWritesThrough(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 1}, Velocity{DX: 2, DY: 3})

	view := ecs.NewView[movers](storage)
	for item := range view.Values() {
		item.Position.X += item.Velocity.DX
		item.Position.Y += item.Velocity.DY
	}

	assert.Equal(t, Position{X: 3, Y: 4}, *ecs.ReadComponent[Position](storage, id))
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	want := storage.Spawn(Position{}, Name{Value: "a"})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Name
	}](storage)

	for id, item := range view.Iter() {
		assert.Equal(t, want, id)
		assert.Equal(t, want, item.EntityId)
	}
}

func TestViewOptionalField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	plain := storage.Spawn(Position{X: 1})
	named := storage.Spawn(Position{X: 2}, Name{Value: "b"})

	view := ecs.NewView[struct {
		Pos  *Position
		Name *Name `ecs:"optional"`
	}](storage)
	assert.Equal(t, 2, view.Count())

	got := view.Get(plain)
	require.NotNil(t, got)
	assert.Nil(t, got.Name)

	got = view.Get(named)
	require.NotNil(t, got)
	require.NotNil(t, got.Name)
	assert.Equal(t, "b", got.Name.Value)
}

func TestViewGetAndFill(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 5}, Velocity{DX: 1})
	lonely := storage.Spawn(Position{X: 6})

	view := ecs.NewView[movers](storage)

	var item movers
	require.True(t, view.Fill(id, &item))
	assert.Equal(t, 5, item.Position.X)

	assert.False(t, view.Fill(lonely, &item))
	assert.Nil(t, view.Get(lonely))

	storage.Delete(id)
	assert.Nil(t, view.Get(id))
}

func TestViewIterIsRestartable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := 0; i < 3; i++ {
		storage.Spawn(Position{X: i})
	}

	view := ecs.NewView[struct{ *Position }](storage)
	seq := view.Values()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())

	storage.Spawn(Position{X: 10})
	assert.Equal(t, 4, count())
}

func TestViewEarlyBreak(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := 0; i < 10; i++ {
		storage.Spawn(Position{X: i})
	}

	view := ecs.NewView[struct{ *Position }](storage)
	n := 0
	for range view.Iter() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestNewViewPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[Position](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Pos *Position `ecs:"sometimes"`
		}](storage)
	})
}
