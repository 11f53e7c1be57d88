// File: api/ctordtor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction policy capability: how a value is built and torn down in a
// caller-given slot. Pools only ever talk to their items through this
// contract, which is what lets a pool of plain structs and a pool of
// preallocated arrays share one implementation.

package api

import "unsafe"

// CtorDtor is the construction/destruction policy for items of type T
// living in raw pool slots.
//
// ItemSize reports the padded byte footprint of one slot. Initialize and
// Create build a value in the given slot and return the live object,
// which for plain value policies is the slot itself. Destroy tears the
// object down and returns the slot base address that is now free for
// reuse; the returned address may differ from obj when the object is a
// handle over pool-owned backing bytes.
type CtorDtor[T any] interface {
	// ItemSize returns the pointer-aligned padded size of one item slot.
	ItemSize() uintptr

	// Initialize default-constructs a value in slot.
	Initialize(slot unsafe.Pointer) *T

	// Create constructs a value in slot from v.
	Create(slot unsafe.Pointer, v T) *T

	// Destroy tears the object down and returns the now-free slot base.
	Destroy(obj *T) unsafe.Pointer
}
