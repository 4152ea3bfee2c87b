package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/sokoban/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,index=%d", tt.archetypeId, tt.index), func(t *testing.T) {
			id := ecs.NewEntityId(tt.archetypeId, tt.index)
			assert.Equal(t, tt.archetypeId, id.ArchetypeId())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestEntityIdString(t *testing.T) {
	assert.Equal(t, "0000abcd:7", ecs.NewEntityId(0xabcd, 7).String())
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 3, Y: 4}, &Name{Value: "crate"})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)

	name := ecs.ReadComponent[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, "crate", name.Value)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
}

func TestComponentPointersAreStable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1, Y: 1})
	pos := ecs.ReadComponent[Position](storage, first)

	// enough spawns to allocate several more blocks
	for i := 0; i < 500; i++ {
		storage.Spawn(Position{X: i, Y: i})
	}

	pos.X = 42
	assert.Equal(t, 42, ecs.ReadComponent[Position](storage, first).X)
}

func TestSameComponentSetSharesArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})
	c := storage.Spawn(Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.ArchetypeId(), c.ArchetypeId())
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, storage.Archetypes())

	arch := storage.GetArchetype(Position{}, Velocity{})
	require.NotNil(t, arch)
	assert.Equal(t, 2, arch.Len())
	assert.Same(t, arch, storage.GetArchetypeByTypes([]reflect.Type{
		reflect.TypeFor[Velocity](),
		reflect.TypeFor[Position](),
	}))
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Health{Current: 5, Max: 5})
	other := storage.Spawn(Position{X: 2}, Health{Current: 1, Max: 5})
	assert.Equal(t, 2, storage.EntityCount())

	storage.Delete(id)
	assert.Equal(t, 1, storage.EntityCount())
	assert.Nil(t, ecs.ReadComponent[Position](storage, id))
	assert.Equal(t, 2, ecs.ReadComponent[Position](storage, other).X)

	// deleting twice or deleting an unknown id is a no-op
	storage.Delete(id)
	storage.Delete(ecs.NewEntityId(0xdead, 0))
	assert.Equal(t, 1, storage.EntityCount())
}

func TestDeletedSlotIsReused(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Score(1))
	storage.Delete(id)
	reused := storage.Spawn(Score(2))

	assert.Equal(t, id, reused)
	assert.Equal(t, Score(2), *ecs.ReadComponent[Score](storage, reused))
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Position{}, Position{}) })
	assert.Panics(t, func() { storage.Spawn(Counter{}) })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestTagComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 9}, Frozen{})
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Frozen]()))
	assert.NotNil(t, ecs.ReadComponent[Frozen](storage, id))
}

func TestClear(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Counter](storage, Counter{Value: 3})

	for i := 0; i < 10; i++ {
		storage.Spawn(Position{X: i})
	}
	storage.Clear()

	assert.Equal(t, 0, storage.EntityCount())
	assert.Equal(t, 0, storage.Archetypes())

	var counter *Counter
	require.True(t, storage.ReadSingleton(&counter))
	assert.Equal(t, 3, counter.Value)
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	counter := ecs.NewSingleton[Counter](storage, Counter{Value: 1})
	require.True(t, counter.Exists())
	counter.Get().Value++

	// a second accessor sees the same value and ignores its initializer
	again := ecs.NewSingleton[Counter](storage, Counter{Value: 100})
	assert.Equal(t, 2, again.Get().Value)

	var read *Counter
	require.True(t, storage.ReadSingleton(&read))
	assert.Same(t, counter.Get(), read)

	storage.RemoveSingleton(reflect.TypeFor[Counter]())
	assert.False(t, counter.Exists())
	assert.Nil(t, counter.Get())
	assert.False(t, storage.ReadSingleton(&read))

	var unbound ecs.Singleton[Counter]
	assert.Nil(t, unbound.Get())

	assert.Panics(t, func() { storage.ReadSingleton(read) })
}
