// File: array/ctordtor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction policy adapter that builds PreallocatedArrays over
// pool-supplied slot bytes.

package array

import (
	"unsafe"

	"github.com/momentics/hioload-mem/api"
)

// ArrayCtorDtor adapts PreallocatedArray to the pool's construction
// policy contract. The element count is fixed at adapter construction,
// so every pool slot is sized by ByteSizeForCount for exactly that
// count.
type ArrayCtorDtor[E any] struct {
	itemCount int
}

var _ api.CtorDtor[PreallocatedArray[int]] = ArrayCtorDtor[int]{}

// NewArrayCtorDtor fixes the per-array element count.
func NewArrayCtorDtor[E any](itemCount int) (ArrayCtorDtor[E], error) {
	if itemCount < 0 {
		return ArrayCtorDtor[E]{}, api.NewError(api.ErrCodeInvalidArgument,
			api.ErrInvalidArgument, "negative array item count").
			WithContext("itemCount", itemCount)
	}
	return ArrayCtorDtor[E]{itemCount: itemCount}, nil
}

// ItemCount returns the fixed per-array element count.
func (c ArrayCtorDtor[E]) ItemCount() int { return c.itemCount }

// ItemSize defers to the canonical array sizing function.
func (c ArrayCtorDtor[E]) ItemSize() uintptr {
	return ByteSizeForCount[E](c.itemCount)
}

// Initialize builds a default-filled array over the slot bytes and
// returns its view.
func (c ArrayCtorDtor[E]) Initialize(slot unsafe.Pointer) *PreallocatedArray[E] {
	a := NewAt[E](slot, c.itemCount)
	return &a
}

// Create builds an array over the slot bytes and copies element values
// from the prototype view v, stopping at whichever is shorter.
func (c ArrayCtorDtor[E]) Create(slot unsafe.Pointer, v PreallocatedArray[E]) *PreallocatedArray[E] {
	a := NewAt[E](slot, c.itemCount)
	if !v.IsNil() {
		copy(a.Elements(), v.Elements())
	}
	return &a
}

// Destroy tears the array down and returns its backing base so the pool
// can reclaim the slot bytes.
func (c ArrayCtorDtor[E]) Destroy(obj *PreallocatedArray[E]) unsafe.Pointer {
	base := obj.base
	obj.Destroy()
	return base
}
