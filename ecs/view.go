package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View matches entities carrying a combination of components.
//
// T must be a struct whose fields are pointers to component types, for example
//
//	struct {
//		*Position
//		*Renderable
//	}
//
// A field of type EntityId receives the matched entity's id. Named pointer
// fields tagged `ecs:"optional"` are filled when present and left nil otherwise.
type View[T any] struct {
	storage   *Storage
	fields    []viewField
	idOffset  uintptr
	hasIdSlot bool
}

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// NewView creates a view for the struct type T. It panics if T is malformed.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasIdSlot = true
			continue
		}
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}

		v.fields = append(v.fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}

	return v
}

// Fill populates *ptr with the entity's components and reports whether every
// required component is present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok || !v.matchesArchetype(archetype) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), archetype, v.columnIndices(archetype), int(id.Index()))
}

// Get returns the populated view struct, or nil if the entity does not match.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for _, field := range v.fields {
		if !field.optional && !archetype.HasComponent(field.typ) {
			return false
		}
	}
	return true
}

func (v *View[T]) columnIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.fields))
	for i, field := range v.fields {
		indices[i] = archetype.columnIndex(field.typ)
	}
	return indices
}

func (v *View[T]) populate(resultPtr unsafe.Pointer, archetype *Archetype, columns []int, slot int) bool {
	for i, column := range columns {
		fieldPtr := (*unsafe.Pointer)(unsafe.Add(resultPtr, v.fields[i].offset))

		var component any
		if column != -1 {
			component = archetype.storages[column].Get(slot)
		}
		if component == nil {
			if !v.fields[i].optional {
				return false
			}
			*fieldPtr = nil
			continue
		}
		*fieldPtr = dataPointer(component)
	}

	if v.hasIdSlot {
		*(*EntityId)(unsafe.Add(resultPtr, v.idOffset)) = NewEntityId(archetype.id, uint32(slot))
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.storages) == 0 {
			return
		}

		columns := v.columnIndices(archetype)
		var result T
		resultPtr := unsafe.Pointer(&result)

		for slot := range archetype.storages[0].Iter() {
			if !v.populate(resultPtr, archetype, columns, slot) {
				continue
			}
			if !yield(NewEntityId(archetype.id, uint32(slot)), result) {
				return
			}
		}
	}
}

// Iter lazily yields every matching entity. The sequence may be ranged over
// any number of times and always reflects the current storage contents.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.archetypes {
			if !v.matchesArchetype(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values is Iter without the entity ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}
