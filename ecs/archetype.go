package ecs

import (
	"iter"
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity sharing one exact set of component types.
// All columns are kept in lockstep: slot i of every column belongs to the
// same entity.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage
	columns  *intmap.Map[uint64, int]
}

// NewArchetype creates an archetype for the given sorted component types.
// It panics if a type was never registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
		columns:  intmap.New[uint64, int](len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
		a.columns.Put(typeKey(typ), idx)
	}

	return a
}

// columnIndex returns the column holding compType, or -1.
func (a *Archetype) columnIndex(compType reflect.Type) int {
	idx, ok := a.columns.Get(typeKey(compType))
	if !ok {
		return -1
	}
	return idx
}

// Spawn appends one entity. components must contain exactly one value (or
// pointer to a value) per archetype type, in any order.
func (a *Archetype) Spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		idx := a.columnIndex(componentType(comp))
		if idx == -1 {
			continue
		}
		slot = a.storages[idx].Append(comp)
	}
	return uint32(slot)
}

// GetComponent returns a pointer to the component, or nil if the slot is
// empty or the archetype lacks the type.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.columnIndex(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// Delete empties the slot in every column. The slot is reused by later spawns.
func (a *Archetype) Delete(entityIndex uint32) {
	for _, storage := range a.storages {
		storage.Delete(int(entityIndex))
	}
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	_, ok := a.columns.Get(typeKey(compType))
	return ok
}

// ID returns the archetype's identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter yields every live entity of the archetype.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}
		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func sortTypes(types []reflect.Type) {
	sort.Sort(byTypeName(types))
}
