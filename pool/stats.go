// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool introspection: lifetime counters and byte accounting across the
// node chain. Useful for capacity planning; not required for correctness.

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-mem/api"
)

// TotalAllocations is the lifetime count of slots handed out.
func (p *ObjectPool[T]) TotalAllocations() uint64 { return p.totalAllocations }

// TotalDestroyed is the lifetime count of slots returned.
func (p *ObjectPool[T]) TotalDestroyed() uint64 { return p.totalDestroyed }

// CurrentlyAlive is TotalAllocations - TotalDestroyed.
func (p *ObjectPool[T]) CurrentlyAlive() uint64 { return p.currentlyAlive }

// ItemSize is the padded byte footprint of one slot.
func (p *ObjectPool[T]) ItemSize() uintptr { return p.ctor.ItemSize() }

// NodeCount is the number of nodes currently chained.
func (p *ObjectPool[T]) NodeCount() int {
	count := 0
	for n := p.first; n != nil; n = n.next {
		count++
	}
	return count
}

// NodeCapacities lists node capacities head to tail. Capacities are
// non-decreasing along the chain and never exceed the growth ceiling.
func (p *ObjectPool[T]) NodeCapacities() []int {
	var caps []int
	for n := p.first; n != nil; n = n.next {
		caps = append(caps, n.capacity)
	}
	return caps
}

// TotalMemorySize sums slab bytes across the chain.
func (p *ObjectPool[T]) TotalMemorySize() uintptr {
	var total uintptr
	for n := p.first; n != nil; n = n.next {
		total += n.memorySize()
	}
	return total
}

// TotalNodesSize adds per-node bookkeeping to TotalMemorySize.
func (p *ObjectPool[T]) TotalNodesSize() uintptr {
	var total uintptr
	for n := p.first; n != nil; n = n.next {
		total += n.memorySize()
		total += unsafe.Sizeof(*n)
	}
	return total
}

// TotalSize adds the pool header to TotalNodesSize.
func (p *ObjectPool[T]) TotalSize() uintptr {
	return p.TotalNodesSize() + unsafe.Sizeof(*p)
}

// Stats returns a snapshot of all accounting in one struct.
func (p *ObjectPool[T]) Stats() api.PoolStats {
	return api.PoolStats{
		TotalAllocations: p.totalAllocations,
		TotalDestroyed:   p.totalDestroyed,
		CurrentlyAlive:   p.currentlyAlive,
		Nodes:            p.NodeCount(),
		ItemSize:         p.ItemSize(),
		MemoryBytes:      p.TotalMemorySize(),
		NodesBytes:       p.TotalNodesSize(),
		TotalBytes:       p.TotalSize(),
	}
}
