// File: api/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Accounting snapshots for pool observability and capacity planning.

package api

// PoolStats aggregates slot and byte accounting for one pool.
//
// CurrentlyAlive always equals TotalAllocations - TotalDestroyed.
// MemoryBytes counts slab bytes only; NodesBytes adds per-node
// bookkeeping; TotalBytes adds the pool header itself.
type PoolStats struct {
	TotalAllocations uint64
	TotalDestroyed   uint64
	CurrentlyAlive   uint64
	Nodes            int
	ItemSize         uintptr
	MemoryBytes      uintptr
	NodesBytes       uintptr
	TotalBytes       uintptr
}
