package ecs

import (
	"reflect"
	"unsafe"
)

// Storage is the entity store: archetype tables plus singleton resources.
type Storage struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry

	// layout changes whenever an archetype is created or the store is cleared
	layout uint64
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates a storage backed by the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// GetArchetype returns the archetype for exactly this component set, if one exists.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	return s.archetypes[hashTypesToUint32(extractComponentTypes(components))]
}

// GetArchetypeByTypes is GetArchetype keyed by reflect.Type.
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sorted := make([]reflect.Type, len(types))
	copy(sorted, types)
	sortTypes(sorted)
	return s.archetypes[hashTypesToUint32(sorted)]
}

// Archetypes returns the number of archetypes created so far.
func (s *Storage) Archetypes() int {
	return len(s.archetypes)
}

// Spawn creates a new entity with the provided components. Passing no
// components, duplicate types or an unregistered type panics.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	for i := 1; i < len(types); i++ {
		if types[i] == types[i-1] {
			panic("duplicate component type " + types[i].String())
		}
	}

	archetypeId := hashTypesToUint32(types)
	archetype, exists := s.archetypes[archetypeId]
	if !exists {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes[archetypeId] = archetype
		s.layout++
	}

	return NewEntityId(archetypeId, archetype.Spawn(components))
}

// Delete removes the entity and all of its components.
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return
	}
	archetype.Delete(id.Index())
}

// Clear drops every entity and archetype. Singletons are kept.
func (s *Storage) Clear() {
	clear(s.archetypes)
	s.layout++
}

// EntityCount returns the number of live entities across all archetypes.
func (s *Storage) EntityCount() int {
	total := 0
	for _, archetype := range s.archetypes {
		total += archetype.Len()
	}
	return total
}

// GetComponent returns a pointer to the entity's component of compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if a live entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	return s.GetComponent(id, compType) != nil
}

// AddSingleton stores value as the singleton of its type, replacing any
// previous one. Pointers obtained earlier through Singleton.Get for the same
// type are refreshed lazily.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	boxed := reflect.New(t)
	boxed.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{
		value:   boxed,
		dataPtr: boxed.UnsafePointer(),
	}
}

// RemoveSingleton deletes the singleton of the given type.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

// ReadSingleton sets *target to the stored singleton of type T and reports
// whether it exists. target is a **T.
func (s *Storage) ReadSingleton(target any) bool {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(ptr.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	ptr.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// extractComponentTypes returns the sorted value types of components.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		types = append(types, componentType(comp))
	}
	sortTypes(types)
	return types
}

// componentType returns the value type of comp, dereferencing one pointer.
// Maps, channels, functions and pointers-to-pointers are rejected.
func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t == nil {
		panic("component cannot be nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// hashTypesToUint32 is FNV-1a over the type descriptor addresses of a sorted
// type list.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		key := typeKey(t)
		h ^= uint32(key) ^ uint32(key>>32)
		h *= prime
	}

	return h
}

// ComponentReader is satisfied by Storage.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the entity's component, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
