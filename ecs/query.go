package ecs

import (
	"iter"
)

// Query wraps a View with caching for systems that iterate every tick.
// Matching archetypes are cached until the storage layout changes, and Execute
// snapshots the matching entities so Iter is a plain slice walk.
type Query[T any] struct {
	view             *View[T]
	storage          *Storage
	cachedArchetypes []*Archetype
	cachedLayout     uint64

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to a storage. The Scheduler calls it for Query fields
// of registered systems.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.cacheValid = false
}

// Execute rebuilds the entity snapshot. The Scheduler calls it right before the
// owning system runs.
func (q *Query[T]) Execute() {
	if q.cachedArchetypes == nil || q.cachedLayout != q.storage.layout {
		q.cachedArchetypes = q.cachedArchetypes[:0]
		for _, archetype := range q.storage.archetypes {
			if q.view.matchesArchetype(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
		q.cachedLayout = q.storage.layout
	}

	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]
	for _, archetype := range q.cachedArchetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.cachedEntities = append(q.cachedEntities, id)
			q.cachedComponents = append(q.cachedComponents, item)
		}
	}

	q.cacheValid = true
}

func (q *Query[T]) mustBeExecuted(method string) {
	if !q.cacheValid {
		panic("Query." + method + "() called before Query.Execute()")
	}
}

// Iter yields the snapshot taken by the last Execute.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.mustBeExecuted("Iter")
	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values yields component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	q.mustBeExecuted("Values")
	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}

// First returns the first matched entity of the snapshot.
func (q *Query[T]) First() (EntityId, T, bool) {
	q.mustBeExecuted("First")
	if len(q.cachedEntities) == 0 {
		var zero T
		return 0, zero, false
	}
	return q.cachedEntities[0], q.cachedComponents[0], true
}

// Len returns the snapshot size.
func (q *Query[T]) Len() int {
	q.mustBeExecuted("Len")
	return len(q.cachedEntities)
}
