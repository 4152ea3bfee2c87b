package ecs

import (
	"iter"
	"math/bits"
	"reflect"
)

// ComponentRegistry maps component types to column factories. Every Storage
// owns one registry, so independent worlds never share component tables.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers T with the registry. A type must be registered
// before an entity carrying it is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() iComponentStorage {
		return &column[T]{}
	}
}

// Registered reports whether the type has a column factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const columnBlockSize = 64

// column stores values of T in fixed-size blocks. Blocks are never moved once
// allocated, so a *T handed out by Get stays valid until its slot is deleted.
type column[T any] struct {
	blocks    []*[columnBlockSize]T
	occupied  []uint64
	freeSlots []int
	next      int
	live      int
}

func (c *column[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.next
		c.next++
		if index/columnBlockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([columnBlockSize]T))
			c.occupied = append(c.occupied, 0)
		}
	}

	block, slot := index/columnBlockSize, index%columnBlockSize
	c.blocks[block][slot] = value
	c.occupied[block] |= 1 << slot
	c.live++
	return index
}

func (c *column[T]) Get(index int) any {
	if !c.Has(index) {
		return nil
	}
	return &c.blocks[index/columnBlockSize][index%columnBlockSize]
}

func (c *column[T]) Delete(index int) {
	if !c.Has(index) {
		return
	}
	block, slot := index/columnBlockSize, index%columnBlockSize
	var zero T
	c.blocks[block][slot] = zero
	c.occupied[block] &^= 1 << slot
	c.freeSlots = append(c.freeSlots, index)
	c.live--
}

func (c *column[T]) Has(index int) bool {
	if index < 0 || index >= c.next {
		return false
	}
	return c.occupied[index/columnBlockSize]&(1<<(index%columnBlockSize)) != 0
}

func (c *column[T]) Len() int {
	return c.live
}

// Iter yields occupied slot indices in ascending order.
func (c *column[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for block, mask := range c.occupied {
			for mask != 0 {
				slot := bits.TrailingZeros64(mask)
				mask &^= 1 << slot
				if !yield(block*columnBlockSize + slot) {
					return
				}
			}
		}
	}
}
