// File: array/prealloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PreallocatedArray: a fixed-length sequence view over caller-supplied
// contiguous storage, with the length stored in a hidden header slot.

package array

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/momentics/hioload-mem/api"
)

// PreallocatedArray is a thin view over an externally owned byte region
// laid out as [length][elements...]. The view does not own the bytes; it
// only holds the exclusive right to construct and destruct elements in
// them, and that right transfers on Move.
//
// The zero value is the nil array: it reports length 0 and Destroy on it
// is a no-op. The backing region's base must be pointer-aligned, which
// every RawAllocator in this module guarantees.
type PreallocatedArray[E any] struct {
	base unsafe.Pointer
}

// slotSize is the padded per-slot stride used for the header slot.
func slotSize[E any]() uintptr {
	var zero E
	return api.ItemSlotSize(unsafe.Sizeof(zero))
}

// ByteSizeForCount is the canonical sizing function: the padded byte size
// of (1 + n) item slots. A region of this size is always sufficient for
// an n-element array, and both direct construction and the pool adapter
// size slots with it. n must be non-negative.
func ByteSizeForCount[E any](n int) uintptr {
	return slotSize[E]() * uintptr(1+n)
}

// NewAt constructs an array of length elements over the region starting
// at base, which must span at least ByteSizeForCount(length) bytes. The
// length is written into the header slot and every element is
// default-initialized.
func NewAt[E any](base unsafe.Pointer, length int) PreallocatedArray[E] {
	*(*uintptr)(base) = uintptr(length)
	a := PreallocatedArray[E]{base: base}
	clear(a.Elements())
	return a
}

// NewAtFilled constructs as NewAt, then assigns initVal into every
// element. Assignment, not re-construction: initialization already ran.
func NewAtFilled[E any](base unsafe.Pointer, length int, initVal E) PreallocatedArray[E] {
	a := NewAt[E](base, length)
	elems := a.Elements()
	for i := range elems {
		elems[i] = initVal
	}
	return a
}

// ViewAt validates that region is large enough for an array of length
// elements before constructing one over it.
func ViewAt[E any](region []byte, length int) (PreallocatedArray[E], error) {
	if length < 0 {
		return PreallocatedArray[E]{}, api.NewError(api.ErrCodeInvalidArgument,
			api.ErrInvalidArgument, "negative array length").
			WithContext("length", length)
	}
	need := ByteSizeForCount[E](length)
	if uintptr(len(region)) < need {
		return PreallocatedArray[E]{}, api.NewError(api.ErrCodeInvalidArgument,
			api.ErrInvalidArgument, "region too small for array").
			WithContext("length", length).
			WithContext("need", need).
			WithContext("have", len(region))
	}
	return NewAt[E](unsafe.Pointer(&region[0]), length), nil
}

// IsNil reports whether the view has no backing region.
func (a PreallocatedArray[E]) IsNil() bool { return a.base == nil }

// Len returns 0 for the nil array, else the header value.
func (a PreallocatedArray[E]) Len() int {
	if a.base == nil {
		return 0
	}
	return int(*(*uintptr)(a.base))
}

// Empty reports Len() == 0.
func (a PreallocatedArray[E]) Empty() bool { return a.Len() == 0 }

func (a PreallocatedArray[E]) data() unsafe.Pointer {
	return unsafe.Add(a.base, slotSize[E]())
}

// Elements exposes the element region as a slice. The header slot is
// excluded. Nil for the nil array.
func (a PreallocatedArray[E]) Elements() []E {
	if a.base == nil {
		return nil
	}
	return unsafe.Slice((*E)(a.data()), a.Len())
}

// Index returns the i-th element, panicking when i is out of range.
func (a PreallocatedArray[E]) Index(i int) *E {
	size := a.Len()
	if i < 0 || i >= size {
		panic(fmt.Sprintf("array: index %d is out of range (size is %d)", i, size))
	}
	return &a.Elements()[i]
}

// At returns the i-th element, reporting out-of-range as an error that
// carries the offending index and the current size.
func (a PreallocatedArray[E]) At(i int) (*E, error) {
	size := a.Len()
	if i < 0 || i >= size {
		return nil, api.NewError(api.ErrCodeOutOfRange, api.ErrOutOfRange,
			fmt.Sprintf("index %d is out of range (size is %d)", i, size)).
			WithContext("index", i).
			WithContext("size", size)
	}
	return &a.Elements()[i], nil
}

// Front is the unchecked first element.
func (a PreallocatedArray[E]) Front() *E {
	return (*E)(a.data())
}

// Back is the unchecked last element.
func (a PreallocatedArray[E]) Back() *E {
	var zero E
	return (*E)(unsafe.Add(a.data(), uintptr(a.Len()-1)*unsafe.Sizeof(zero)))
}

// All iterates elements in index order. The sequence is finite and can be
// ranged over any number of times while the array is alive.
func (a PreallocatedArray[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		elems := a.Elements()
		for i := range elems {
			if !yield(i, elems[i]) {
				return
			}
		}
	}
}

// Backward iterates elements in reverse index order.
func (a PreallocatedArray[E]) Backward() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		elems := a.Elements()
		for i := len(elems) - 1; i >= 0; i-- {
			if !yield(i, elems[i]) {
				return
			}
		}
	}
}

// Destroy destructs every element, zeroes the stored length and drops the
// backing pointer, leaving the view identical to a default-constructed
// one. Safe no-op on nil and moved-from arrays.
func (a *PreallocatedArray[E]) Destroy() {
	if a.base == nil {
		return
	}
	clear(a.Elements())
	*(*uintptr)(a.base) = 0
	a.base = nil
}

// Move transfers the view. The receiver becomes the nil array and will
// not re-destruct elements it no longer owns.
func (a *PreallocatedArray[E]) Move() PreallocatedArray[E] {
	moved := PreallocatedArray[E]{base: a.base}
	a.base = nil
	return moved
}
