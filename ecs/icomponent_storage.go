package ecs

import "iter"

// iComponentStorage is a type-erased column holding one component type for
// every entity of an archetype.
type iComponentStorage interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}
