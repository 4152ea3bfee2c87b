package ecs_test

import (
	"testing"

	"github.com/plus3/sokoban/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryRequiresExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	assert.PanicsWithValue(t, "Query.Len() called before Query.Execute()", func() { query.Len() })
	assert.Panics(t, func() { query.Iter() })
	assert.Panics(t, func() { query.Values() })
	assert.Panics(t, func() { query.First() })
}

func TestQuerySnapshot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1})
	query := ecs.NewQuery[struct{ *Position }](storage)

	query.Execute()
	assert.Equal(t, 1, query.Len())

	// new entities appear only after the next Execute
	storage.Spawn(Position{X: 2})
	assert.Equal(t, 1, query.Len())

	query.Execute()
	assert.Equal(t, 2, query.Len())
}

func TestQuerySeesNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1})
	query := ecs.NewQuery[struct{ *Position }](storage)
	query.Execute()

	storage.Spawn(Position{X: 2}, Velocity{})
	storage.Spawn(Position{X: 3}, Name{})
	query.Execute()
	assert.Equal(t, 3, query.Len())
}

func TestQueryAfterClear(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1})
	query := ecs.NewQuery[struct{ *Position }](storage)
	query.Execute()

	storage.Clear()
	query.Execute()
	assert.Equal(t, 0, query.Len())

	id := storage.Spawn(Position{X: 7})
	query.Execute()
	got, item, ok := query.First()
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, 7, item.Position.X)
}

func TestQueryFirstEmpty(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)
	query.Execute()

	_, item, ok := query.First()
	assert.False(t, ok)
	assert.Nil(t, item.Position)
}

func TestQueryIterYieldsIds(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ids := map[ecs.EntityId]bool{
		storage.Spawn(Position{X: 1}, Velocity{}): true,
		storage.Spawn(Position{X: 2}, Velocity{}): true,
	}
	query := ecs.NewQuery[movers](storage)
	query.Execute()

	for id, item := range query.Iter() {
		assert.True(t, ids[id])
		assert.NotNil(t, item.Velocity)
	}
}
