package ecs

import "reflect"

// Singleton gives typed access to a storage-wide component that belongs to no
// entity: input buffers, per-tick indexes, configuration.
type Singleton[T any] struct {
	storage *Storage
}

// NewSingleton returns an accessor for T, creating the singleton from
// initializer (or the zero value) when the storage does not hold one yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}
	return &Singleton[T]{storage: storage}
}

// Init binds the accessor to a storage. The Scheduler calls it for Singleton
// fields of registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
}

// Get returns the singleton, or nil if it was never added.
func (s *Singleton[T]) Get() *T {
	if s.storage == nil {
		return nil
	}
	entry := s.storage.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return (*T)(entry.dataPtr)
}

// Exists reports whether the singleton has been added to storage.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
