// Package pool
// Author: momentics <momentics@gmail.com>
//
// Growable fixed-type object pool for hioload-mem.
// A pool owns a singly-linked chain of nodes, each one capacity tier of
// same-sized slots packed into a single slab obtained from a RawAllocator.
// Slot construction and destruction go through a CtorDtor policy, so the
// pool never knows what its slots hold.
// See node.go and objectpool.go for implementation details.
//
// Pools are not synchronized. Callers needing concurrent access must
// serialize all calls on a pool instance externally.
//
// Slab bytes are untyped memory: pointers stored in pooled values are
// invisible to the garbage collector, so their referents must be kept
// alive elsewhere. WeakRefCtorDtor makes that observing-only contract
// explicit.
package pool
