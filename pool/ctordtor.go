// File: pool/ctordtor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Built-in construction policies: plain in-place values and observing
// weak-reference slots.

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-mem/api"
)

// DefaultCtorDtor constructs and destructs plain values of T directly in
// the slot. Initialize and Destroy both leave the slot zeroed, so a
// recycled slot never leaks a previous occupant.
type DefaultCtorDtor[T any] struct{}

var _ api.CtorDtor[int] = DefaultCtorDtor[int]{}

func (DefaultCtorDtor[T]) ItemSize() uintptr {
	var zero T
	return api.ItemSlotSize(unsafe.Sizeof(zero))
}

func (DefaultCtorDtor[T]) Initialize(slot unsafe.Pointer) *T {
	p := (*T)(slot)
	var zero T
	*p = zero
	return p
}

func (DefaultCtorDtor[T]) Create(slot unsafe.Pointer, v T) *T {
	p := (*T)(slot)
	*p = v
	return p
}

func (DefaultCtorDtor[T]) Destroy(obj *T) unsafe.Pointer {
	var zero T
	*obj = zero
	return unsafe.Pointer(obj)
}

// WeakRefCtorDtor stores a single observing pointer to U per slot. The
// pool never owns the referent: Create records the pointer and Destroy
// nulls it. Since slabs are not scanned by the collector this is a true
// weak reference - it does not keep the referent alive.
type WeakRefCtorDtor[U any] struct{}

var _ api.CtorDtor[*int] = WeakRefCtorDtor[int]{}

func (WeakRefCtorDtor[U]) ItemSize() uintptr {
	return api.ItemSlotSize(unsafe.Sizeof((*U)(nil)))
}

func (WeakRefCtorDtor[U]) Initialize(slot unsafe.Pointer) **U {
	p := (**U)(slot)
	*p = nil
	return p
}

func (WeakRefCtorDtor[U]) Create(slot unsafe.Pointer, v *U) **U {
	p := (**U)(slot)
	*p = v
	return p
}

func (WeakRefCtorDtor[U]) Destroy(obj **U) unsafe.Pointer {
	*obj = nil
	return unsafe.Pointer(obj)
}
