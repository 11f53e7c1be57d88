// File: pool/node.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One capacity tier of a pool: a slab of same-sized slots plus chain
// linkage. Each node exclusively owns its successor.

package pool

import (
	"unsafe"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-mem/api"
)

// node packs capacity slots of itemSize bytes into one slab. Fresh slots
// are handed out in order; released slots go onto the recycled queue and
// are reused first-in first-out, the same way the slab pool in hioload-ws
// queues its free buffers.
type node struct {
	next      *node
	slab      []byte
	itemSize  uintptr
	capacity  int
	occupied  int
	nextFresh int          // first never-used slot index
	recycled  *queue.Queue // freed slot indices
}

func newNode(alloc api.RawAllocator, capacity int, itemSize uintptr) (*node, error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity,
			"node capacity must be at least 1").WithContext("capacity", capacity)
	}
	slabSize := itemSize * uintptr(capacity)
	if slabSize/itemSize != uintptr(capacity) {
		return nil, api.NewError(api.ErrCodeOverflow, api.ErrCapacityOverflow,
			"slab size overflows").
			WithContext("capacity", capacity).
			WithContext("itemSize", itemSize)
	}
	slab, err := alloc.Allocate(int(slabSize))
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocationFailure, err,
			"slab allocation failed").WithContext("size", slabSize)
	}
	return &node{
		slab:     slab,
		itemSize: itemSize,
		capacity: capacity,
		recycled: queue.New(),
	}, nil
}

func (n *node) base() unsafe.Pointer {
	return unsafe.Pointer(&n.slab[0])
}

// hasSlots reports whether at least one slot is free.
func (n *node) hasSlots() bool {
	return n.occupied < n.capacity
}

func (n *node) isEmpty() bool {
	return n.occupied == 0
}

func (n *node) emptySlots() int {
	return n.capacity - n.occupied
}

// memorySize is the slab byte footprint.
func (n *node) memorySize() uintptr {
	return uintptr(len(n.slab))
}

// contains reports whether addr falls inside this node's slab.
func (n *node) contains(addr unsafe.Pointer) bool {
	if n.slab == nil {
		return false
	}
	a := uintptr(addr)
	b := uintptr(n.base())
	return a >= b && a < b+n.memorySize()
}

// acquire hands out a free slot address. Callers must check hasSlots
// first; acquiring from a full node is a bug.
func (n *node) acquire() unsafe.Pointer {
	var idx int
	if n.recycled.Length() > 0 {
		idx = n.recycled.Remove().(int)
	} else {
		idx = n.nextFresh
		n.nextFresh++
	}
	n.occupied++
	return unsafe.Add(n.base(), uintptr(idx)*n.itemSize)
}

// release returns a slot to circulation. A release against an already
// empty node reports double-release instead of corrupting the counters.
func (n *node) release(addr unsafe.Pointer) error {
	if n.isEmpty() {
		return api.NewError(api.ErrCodeDoubleRelease, api.ErrDoubleRelease,
			"destroy on empty node").
			WithContext("emptySlots", n.emptySlots()).
			WithContext("capacity", n.capacity)
	}
	idx := int((uintptr(addr) - uintptr(n.base())) / n.itemSize)
	n.recycled.Add(idx)
	n.occupied--
	return nil
}

// free returns the slab to the allocator. The node must already be
// unlinked from its chain.
func (n *node) free(alloc api.RawAllocator) {
	if n.slab != nil {
		alloc.Deallocate(n.slab)
		n.slab = nil
	}
}
