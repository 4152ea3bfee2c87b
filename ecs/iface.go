package ecs

import (
	"reflect"
	"unsafe"
)

// iface mirrors the runtime layout of a non-empty interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// dataPointer returns the pointer carried by an interface holding a *T.
func dataPointer(v any) unsafe.Pointer {
	return (*iface)(unsafe.Pointer(&v)).data
}

// typeKey returns the address of the runtime type descriptor, which is unique
// per type for the lifetime of the process.
func typeKey(t reflect.Type) uint64 {
	return uint64(uintptr((*iface)(unsafe.Pointer(&t)).data))
}
