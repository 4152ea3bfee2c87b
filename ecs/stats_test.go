package ecs_test

import (
	"testing"

	"github.com/plus3/sokoban/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Counter](storage)

	for i := 0; i < 3; i++ {
		storage.Spawn(Position{X: i})
	}
	storage.Spawn(Position{}, Velocity{})

	stats := storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 4, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Counter"}, stats.SingletonTypes)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Equal(t, 3, stats.ArchetypeBreakdown[0].EntityCount)
	assert.Equal(t, []string{"ecs_test.Position"}, stats.ArchetypeBreakdown[0].ComponentTypes)
	assert.Equal(t, []string{"ecs_test.Position", "ecs_test.Velocity"}, stats.ArchetypeBreakdown[1].ComponentTypes)
}

func TestCollectStatsEmpty(t *testing.T) {
	stats := ecs.NewStorage(newTestRegistry()).CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Empty(t, stats.ArchetypeBreakdown)
}
